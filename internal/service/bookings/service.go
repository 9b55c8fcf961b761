package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
	"github.com/m04kA/SMC-TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TableBookingService/pkg/ptr"
)

// upcomingWindow насколько вперед от now ищутся бронирования стола
const upcomingWindow = 24 * time.Hour

// Service сервис очереди бронирований для персонала ресторана
type Service struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	policy         domain.BookingPolicy
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		policy:         policy,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Доступно гостю без авторизации: по ID заявки гость видит статус и обратный отсчет,
// но не контакты гостя
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingStatusResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingStatus(booking, s.timeProvider.Now(), s.policy.PendingTTL()), nil
}

// GetRestaurantBookings получает очередь бронирований ресторана
// Поддерживает фильтрацию по столу, дате и статусу
// Доступно только сотрудникам ресторана
func (s *Service) GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRestaurantBookings: restaurant=%d, user=%d, table=%v, status=%v",
		req.RestaurantID, req.UserID, req.TableID, req.Status)

	if _, err := s.checkStaffAccess(ctx, req.RestaurantID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRestaurantBookings: invalid filter for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantBookings: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantBookings: fetched %d bookings for restaurant=%d", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now(), s.policy.PendingTTL()), nil
}

// Confirm подтверждает заявку pending
func (s *Service) Confirm(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: booking id=%d by user=%d", bookingID, userID)
	return s.transition(ctx, "Confirm", bookingID, userID, domain.StatusConfirmed, nil)
}

// Decline отклоняет бронирование с обязательной причиной
func (s *Service) Decline(ctx context.Context, bookingID int64, req *models.DeclineBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Decline: booking id=%d by user=%d", bookingID, req.UserID)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.logger.Warn("Decline: empty reason for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: decline reason is required", ErrInvalidInput)
	}
	if len([]rune(reason)) > domain.MaxDeclineReasonSize {
		return nil, fmt.Errorf("%w: decline reason exceeds %d characters", ErrInvalidInput, domain.MaxDeclineReasonSize)
	}

	return s.transition(ctx, "Decline", bookingID, req.UserID, domain.StatusDeclined, &reason)
}

// Seat отмечает, что гости подтвержденного бронирования сели за стол
func (s *Service) Seat(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Seat: booking id=%d by user=%d", bookingID, userID)
	return s.transition(ctx, "Seat", bookingID, userID, domain.StatusOccupied, nil)
}

// FreeTable освобождает стол: текущее бронирование confirmed или occupied завершается
func (s *Service) FreeTable(ctx context.Context, req *models.TableActionRequest) (*models.BookingResponse, error) {
	s.logger.Info("FreeTable: restaurant=%d, table=%d by user=%d", req.RestaurantID, req.TableID, req.UserID)

	var result *models.BookingResponse
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		table, err := s.staffTable(txCtx, "FreeTable", req)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		bookings, err := s.tableBookings(txCtx, table, now)
		if err != nil {
			s.logger.Error("FreeTable: failed to get bookings of table id=%d: %v", table.ID, err)
			return fmt.Errorf("%w: FreeTable - repository error: %v", ErrInternal, err)
		}

		due := schedule.DueBooking(table, bookings, now, s.policy.PendingTTL())
		if due == nil || !due.IsSeated() {
			s.logger.Warn("FreeTable: table id=%d has no seated booking", table.ID)
			return ErrNothingToFree
		}

		if err := s.applyTransition(txCtx, "FreeTable", due, domain.StatusCompleted, nil, now); err != nil {
			return err
		}

		result = models.FromDomainBooking(due, now, s.policy.PendingTTL())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("FreeTable: table id=%d freed, booking id=%d completed", req.TableID, result.ID)
	return result, nil
}

// SeatWalkIn сажает гостей без брони за свободный стол
// Бронирование создается сразу в статусе occupied на текущее время
func (s *Service) SeatWalkIn(ctx context.Context, req *models.WalkInRequest) (*models.BookingResponse, error) {
	s.logger.Info("SeatWalkIn: restaurant=%d, table=%d, guests=%d by user=%d",
		req.RestaurantID, req.TableID, req.GuestCount, req.UserID)

	guestName := strings.TrimSpace(req.GuestName)
	if guestName == "" {
		guestName = "Гость"
	}
	if len([]rune(guestName)) > domain.MaxGuestNameLength {
		return nil, fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}
	if req.GuestCount < 1 {
		return nil, fmt.Errorf("%w: guest count must be positive", ErrInvalidInput)
	}

	var result *models.BookingResponse
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		table, err := s.staffTable(txCtx, "SeatWalkIn", &req.TableActionRequest)
		if err != nil {
			return err
		}

		if !table.Fits(req.GuestCount) {
			s.logger.Warn("SeatWalkIn: %d guests do not fit table id=%d", req.GuestCount, table.ID)
			return fmt.Errorf("%w: table has %d seats", ErrTooManyGuests, table.Seats)
		}

		now := s.timeProvider.Now()
		bookings, err := s.tableBookings(txCtx, table, now)
		if err != nil {
			s.logger.Error("SeatWalkIn: failed to get bookings of table id=%d: %v", table.ID, err)
			return fmt.Errorf("%w: SeatWalkIn - repository error: %v", ErrInternal, err)
		}

		if status := schedule.ClassifyTableStatus(table, bookings, now, s.policy); status != domain.TableAvailable {
			s.logger.Warn("SeatWalkIn: table id=%d is %s", table.ID, status)
			return fmt.Errorf("%w: table is %s", ErrTableBusy, status)
		}

		booking := &domain.Booking{
			RestaurantID: table.RestaurantID,
			TableID:      table.ID,
			GuestName:    guestName,
			GuestCount:   req.GuestCount,
			DateTime:     now.Truncate(time.Minute),
			Status:       domain.StatusOccupied,
			CreatedAt:    now,
		}

		created, err := s.bookingRepo.Create(txCtx, booking)
		if err != nil {
			s.logger.Error("SeatWalkIn: failed to create booking: %v", err)
			return fmt.Errorf("%w: SeatWalkIn - repository error: %v", ErrInternal, err)
		}

		result = models.FromDomainBooking(created, now, s.policy.PendingTTL())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.BookingCreated(result.Status)
	s.logger.Info("SeatWalkIn: walk-in booking id=%d seated at table id=%d", result.ID, result.TableID)
	return result, nil
}

// Вспомогательные методы

// transition загружает бронирование с блокировкой, проверяет права и допустимость перехода
func (s *Service) transition(
	ctx context.Context,
	op string,
	bookingID, userID int64,
	to domain.BookingStatus,
	reason *string,
) (*models.BookingResponse, error) {
	var result *models.BookingResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("%s: booking id=%d not found", op, bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if _, err := s.checkStaffAccess(txCtx, booking.RestaurantID, userID); err != nil {
			return err
		}

		now := s.timeProvider.Now()

		// Просроченную заявку можно только отклонить, подтвердить ее нельзя
		if to == domain.StatusConfirmed && schedule.IsExpired(booking, now, s.policy.PendingTTL()) {
			s.logger.Warn("%s: booking id=%d expired", op, bookingID)
			return ErrBookingExpired
		}

		if err := s.applyTransition(txCtx, op, booking, to, reason, now); err != nil {
			return err
		}

		result = models.FromDomainBooking(booking, now, s.policy.PendingTTL())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: booking id=%d is now %s", op, bookingID, to)
	return result, nil
}

// applyTransition проверяет переход и сохраняет новый статус; booking обновляется на месте
func (s *Service) applyTransition(
	ctx context.Context,
	op string,
	booking *domain.Booking,
	to domain.BookingStatus,
	reason *string,
	now time.Time,
) error {
	if !schedule.CanTransition(booking.Status, to) {
		s.logger.Warn("%s: booking id=%d cannot move from %s to %s", op, booking.ID, booking.Status, to)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, to)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, to, reason, now); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			s.logger.Warn("%s: booking id=%d changed concurrently", op, booking.ID)
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, booking.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	booking.Status = to
	booking.DecidedAt = ptr.Ptr(now)
	booking.UpdatedAt = now
	if reason != nil {
		booking.DeclineReason = reason
	}

	s.metrics.BookingStatusChanged(string(to))
	return nil
}

// staffTable проверяет права сотрудника и возвращает стол ресторана
func (s *Service) staffTable(ctx context.Context, op string, req *models.TableActionRequest) (*domain.Table, error) {
	if _, err := s.checkStaffAccess(ctx, req.RestaurantID, req.UserID); err != nil {
		return nil, err
	}

	table, err := s.restaurantRepo.GetTableByID(ctx, req.RestaurantID, req.TableID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrTableNotFound) {
			s.logger.Warn("%s: table id=%d not found in restaurant id=%d", op, req.TableID, req.RestaurantID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("%s: failed to get table id=%d: %v", op, req.TableID, err)
		return nil, fmt.Errorf("%w: %s - failed to get table: %v", ErrInternal, op, err)
	}

	return table, nil
}

// tableBookings получает активные бронирования стола, начавшиеся до now+upcomingWindow
// Нижней границы нет: стол, который забыли освободить, должен оставаться видимым
func (s *Service) tableBookings(ctx context.Context, table *domain.Table, now time.Time) ([]*domain.Booking, error) {
	to := now.Add(upcomingWindow)
	return s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RestaurantID: table.RestaurantID,
		TableID:      &table.ID,
		To:           &to,
		Statuses:     domain.ActiveStatuses,
	})
}

// checkStaffAccess проверяет, что пользователь является сотрудником ресторана
func (s *Service) checkStaffAccess(ctx context.Context, restaurantID, userID int64) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("checkStaffAccess: restaurant id=%d not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get restaurant id=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: checkStaffAccess - failed to get restaurant: %v", ErrInternal, err)
	}

	if !restaurant.IsStaff(userID) {
		s.logger.Warn("checkStaffAccess: user=%d is not staff of restaurant=%d", userID, restaurantID)
		return nil, ErrAccessDenied
	}

	return restaurant, nil
}
