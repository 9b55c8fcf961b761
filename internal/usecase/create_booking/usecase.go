package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
)

// UseCase use case для создания заявки на бронирование стола
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	policy         domain.BookingPolicy
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		policy:         policy,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute выполняет use case создания заявки
// Доступность слота пересчитывается в сериализуемой транзакции, поэтому два гостя
// не могут одновременно занять один и тот же слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: restaurant=%d, table=%d, date=%s, time=%s, guests=%d",
		req.RestaurantID, req.TableID, req.Date.Format(domain.DateFormat), req.StartTime, req.GuestCount)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время ресторана
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	// 3. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Получаем стол и проверяем вместимость
	table, err := uc.restaurantRepo.GetTableByID(ctx, req.RestaurantID, req.TableID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateBooking: table id=%d not found in restaurant id=%d", req.TableID, req.RestaurantID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateBooking: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	if !table.Fits(req.GuestCount) {
		uc.logger.Warn("CreateBooking: %d guests do not fit table id=%d with %d seats", req.GuestCount, table.ID, table.Seats)
		return nil, fmt.Errorf("%w: table has %d seats", ErrTooManyGuests, table.Seats)
	}

	hours := restaurant.Hours()
	dateTime := schedule.SlotDateTime(date, hours, req.StartTime)

	var result *domain.Booking

	// 5. Выполняем проверку слота и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем бронирования стола на смену с блокировкой (FOR UPDATE)
		from := date
		to := date.AddDate(0, 0, 2)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			RestaurantID: req.RestaurantID,
			TableID:      &table.ID,
			From:         &from,
			To:           &to,
			Statuses:     domain.ActiveStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Пересчитываем доступные слоты
		query := schedule.SlotQuery{
			Table:    table,
			Date:     date,
			Hours:    hours,
			Bookings: bookings,
			Now:      now,
			Policy:   uc.policy,
		}
		slots := schedule.ComputeAvailableSlots(query)

		if len(slots) == 0 {
			uc.logger.Warn("CreateBooking: no slots left for table id=%d on %s", table.ID, date.Format(domain.DateFormat))
			return ErrNoSlotsAvailable
		}

		if !schedule.ContainsSlot(slots, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s is not available for table id=%d", req.StartTime, table.ID)
			return ErrSlotNotAvailable
		}

		// 5.3. Предупреждаем о следующем бронировании стола
		horizon := time.Duration(uc.policy.ConflictHorizonMinutes) * time.Minute
		if next := schedule.NextBookingWithin(query, req.StartTime, horizon); next != nil && !req.AcknowledgeConflict {
			uc.logger.Info("CreateBooking: table id=%d is booked at %s, acknowledgement required",
				table.ID, next.DateTime.Format(domain.DateTimeFormat))
			return &ConflictWarning{NextBookingAt: next.DateTime}
		}

		// 5.4. Создаем заявку в статусе pending
		booking := &domain.Booking{
			RestaurantID: req.RestaurantID,
			TableID:      table.ID,
			GuestName:    req.GuestName,
			GuestPhone:   req.GuestPhone,
			GuestCount:   req.GuestCount,
			DateTime:     dateTime,
			Status:       domain.StatusPending,
			CreatedAt:    now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated(string(result.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%d at %s",
		result.ID, result.DateTime.Format(domain.DateTimeFormat))

	return &Response{
		ID:               result.ID,
		RestaurantID:     result.RestaurantID,
		TableID:          result.TableID,
		GuestName:        result.GuestName,
		GuestPhone:       result.GuestPhone,
		GuestCount:       result.GuestCount,
		DateTime:         result.DateTime,
		Status:           string(result.Status),
		PendingExpiresIn: schedule.PendingSecondsLeft(result.CreatedAt, now, uc.policy.PendingTTL()),
		CreatedAt:        result.CreatedAt,
	}, nil
}
