package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
)

// UseCase use case для получения доступных слотов стола
type UseCase struct {
	restaurantRepo RestaurantRepository
	bookingRepo    BookingRepository
	policy         domain.BookingPolicy
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	restaurantRepo RestaurantRepository,
	bookingRepo BookingRepository,
	policy domain.BookingPolicy,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		policy:         policy,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: restaurant=%d, table=%d, date=%s",
		req.RestaurantID, req.TableID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время ресторана
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	// 3. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableSlots: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Получаем стол
	table, err := uc.restaurantRepo.GetTableByID(ctx, req.RestaurantID, req.TableID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			uc.logger.Warn("GetAvailableSlots: table id=%d not found in restaurant id=%d", req.TableID, req.RestaurantID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования стола, пересекающиеся со сменой (ночная смена заходит на следующий день)
	from := date
	to := date.AddDate(0, 0, 2)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RestaurantID: req.RestaurantID,
		TableID:      &table.ID,
		From:         &from,
		To:           &to,
		Statuses:     domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступные слоты
	slots := schedule.ComputeAvailableSlots(schedule.SlotQuery{
		Table:    table,
		Date:     date,
		Hours:    restaurant.Hours(),
		Bookings: bookings,
		Now:      now,
		Policy:   uc.policy,
	})
	uc.metrics.SlotsOffered(len(slots))

	uc.logger.Info("GetAvailableSlots: %d slots for restaurant=%d, table=%d, date=%s",
		len(slots), req.RestaurantID, req.TableID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		RestaurantID:    req.RestaurantID,
		TableID:         table.ID,
		Seats:           table.Seats,
		IntervalMinutes: uc.policy.SlotIntervalMinutes,
		Slots:           slots,
	}, nil
}
