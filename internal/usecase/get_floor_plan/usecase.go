package get_floor_plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
	"github.com/m04kA/SMC-TableBookingService/pkg/ptr"
)

// upcomingWindow насколько вперед от now загружаются бронирования для классификации
// Нижней границы нет: неосвобожденный стол остается занятым сколько угодно долго
const upcomingWindow = 24 * time.Hour

// UseCase use case для получения схемы зала со статусами столов
type UseCase struct {
	restaurantRepo RestaurantRepository
	bookingRepo    BookingRepository
	policy         domain.BookingPolicy
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	policy domain.BookingPolicy,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		policy:         policy,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute выполняет use case получения схемы зала
// Статусы не хранятся, а вычисляются заново на каждый запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFloorPlan: restaurant=%d", req.RestaurantID)

	// 1. Валидация входных данных
	if req.RestaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время ресторана
	now := uc.timeProvider.Now()

	// 3. Проверяем существование ресторана
	if _, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetFloorPlan: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetFloorPlan: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Получаем столы
	tables, err := uc.restaurantRepo.ListTables(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("GetFloorPlan: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 5. Получаем все активные бронирования до конца окна
	to := now.Add(upcomingWindow)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RestaurantID: req.RestaurantID,
		To:           &to,
		Statuses:     domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetFloorPlan: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Классифицируем каждый стол
	states := make([]TableState, 0, len(tables))
	for _, table := range tables {
		states = append(states, uc.tableState(table, bookings, now))
	}

	return &Response{
		RestaurantID: req.RestaurantID,
		Now:          now,
		Tables:       states,
	}, nil
}

func (uc *UseCase) tableState(table *domain.Table, bookings []*domain.Booking, now time.Time) TableState {
	state := TableState{
		TableID: table.ID,
		Number:  table.Number,
		Floor:   table.Floor,
		Seats:   table.Seats,
		Status:  string(schedule.ClassifyTableStatus(table, bookings, now, uc.policy)),
	}

	if due := schedule.DueBooking(table, bookings, now, uc.policy.PendingTTL()); due != nil {
		state.BookingID = ptr.Ptr(due.ID)
		if due.IsPending() {
			state.ExpiresIn = ptr.Ptr(schedule.PendingSecondsLeft(due.CreatedAt, now, uc.policy.PendingTTL()))
		}
	}

	if next := schedule.NextBooking(table, bookings, now, uc.policy.PendingTTL()); next != nil {
		state.NextAt = ptr.Ptr(next.DateTime)
	}

	return state
}
