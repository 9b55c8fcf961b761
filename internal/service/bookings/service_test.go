package bookings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TableBookingService/pkg/ptr"
)

const (
	staffID   int64 = 100
	visitorID int64 = 200
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct {
	created []string
	changed []string
}

func (m *fakeMetrics) BookingCreated(status string)       { m.created = append(m.created, status) }
func (m *fakeMetrics) BookingStatusChanged(status string) { m.changed = append(m.changed, status) }

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRestaurants struct{}

func (fakeRestaurants) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if id != 1 {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return &domain.Restaurant{ID: 1, WorkStarts: "10:00", WorkEnds: "23:00", StaffIDs: []int64{staffID}}, nil
}

func (fakeRestaurants) GetTableByID(_ context.Context, restaurantID, tableID int64) (*domain.Table, error) {
	if restaurantID != 1 || tableID != 3 {
		return nil, restaurantRepo.ErrTableNotFound
	}
	return &domain.Table{ID: 3, RestaurantID: 1, Number: "3", Seats: 4}, nil
}

type fakeBookings struct {
	items  map[int64]*domain.Booking
	next   int64
	filter domain.BookingsFilter
}

func newFakeBookings(bookings ...*domain.Booking) *fakeBookings {
	f := &fakeBookings{items: map[int64]*domain.Booking{}, next: 1000}
	for _, b := range bookings {
		f.items[b.ID] = b
	}
	return f
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.next++
	b.ID = f.next
	f.items[b.ID] = b
	return b, nil
}

func (f *fakeBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookings) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	result := make([]*domain.Booking, 0)
	for _, b := range f.items {
		if b.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.TableID != nil && b.TableID != *filter.TableID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, b.Status) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus, reason *string, decidedAt time.Time) error {
	b, ok := f.items[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusChanged
	}
	b.Status = to
	b.DecidedAt = &decidedAt
	b.DeclineReason = reason
	return nil
}

func containsStatus(statuses []domain.BookingStatus, s domain.BookingStatus) bool {
	for _, status := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

func moment(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newBooking(id int64, status domain.BookingStatus, at string) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		RestaurantID: 1,
		TableID:      3,
		GuestName:    "Анна",
		GuestCount:   2,
		DateTime:     moment(at),
		Status:       status,
		CreatedAt:    moment("2025-10-15 18:00"),
	}
}

func newTestService(now time.Time, bookings ...*domain.Booking) (*Service, *fakeBookings, *fakeMetrics, *fixedTime) {
	repo := newFakeBookings(bookings...)
	m := &fakeMetrics{}
	clock := &fixedTime{now: now}

	svc := NewService(repo, fakeRestaurants{}, fakeTxManager{}, domain.DefaultBookingPolicy(), time.UTC, m, nopLogger{})
	svc.timeProvider = clock

	return svc, repo, m, clock
}

func TestGetByID_PendingCountdown(t *testing.T) {
	svc, _, _, _ := newTestService(moment("2025-10-15 18:00").Add(55*time.Second),
		newBooking(1, domain.StatusPending, "2025-10-15 19:00"))

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, resp.ExpiresInSeconds)
	assert.Equal(t, 125, *resp.ExpiresInSeconds)
	assert.Equal(t, "2:05", *resp.Countdown)
	assert.Equal(t, "2025-10-15T19:00:00", resp.DateTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_HidesGuestContacts(t *testing.T) {
	b := newBooking(1, domain.StatusConfirmed, "2025-10-15 19:00")
	b.GuestPhone = "+79991234567"
	svc, _, _, _ := newTestService(moment("2025-10-15 18:30"), b)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "guestName")
	assert.NotContains(t, fields, "guestPhone")
	assert.NotContains(t, string(raw), "+79991234567")
	assert.NotContains(t, string(raw), "Анна")

	// Персонал по-прежнему видит контакты гостя в очереди
	list, err := svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{UserID: staffID, RestaurantID: 1})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "+79991234567", list.Bookings[0].GuestPhone)
	assert.Equal(t, "Анна", list.Bookings[0].GuestName)
}

func TestConfirm(t *testing.T) {
	svc, repo, m, _ := newTestService(moment("2025-10-15 18:01"),
		newBooking(1, domain.StatusPending, "2025-10-15 19:00"))

	_, err := svc.Confirm(context.Background(), 1, visitorID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Confirm(context.Background(), 1, staffID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Nil(t, resp.Countdown)
	assert.Equal(t, domain.StatusConfirmed, repo.items[1].Status)
	assert.Equal(t, []string{"confirmed"}, m.changed)

	_, err = svc.Confirm(context.Background(), 1, staffID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirm_ExpiredRequest(t *testing.T) {
	svc, _, _, _ := newTestService(moment("2025-10-15 18:03").Add(time.Second),
		newBooking(1, domain.StatusPending, "2025-10-15 19:00"))

	_, err := svc.Confirm(context.Background(), 1, staffID)
	assert.ErrorIs(t, err, ErrBookingExpired)
}

func TestDecline(t *testing.T) {
	svc, repo, _, _ := newTestService(moment("2025-10-15 18:01"),
		newBooking(1, domain.StatusPending, "2025-10-15 19:00"),
		newBooking(2, domain.StatusCompleted, "2025-10-15 12:00"))

	_, err := svc.Decline(context.Background(), 1, &models.DeclineBookingRequest{UserID: staffID, Reason: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, domain.StatusPending, repo.items[1].Status)

	resp, err := svc.Decline(context.Background(), 1, &models.DeclineBookingRequest{UserID: staffID, Reason: " стол в ремонте "})
	require.NoError(t, err)
	assert.Equal(t, "declined", resp.Status)
	require.NotNil(t, resp.DeclineReason)
	assert.Equal(t, "стол в ремонте", *resp.DeclineReason)
	assert.NotNil(t, resp.DecidedAt)

	_, err = svc.Decline(context.Background(), 2, &models.DeclineBookingRequest{UserID: staffID, Reason: "поздно"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSeatAndFreeTable(t *testing.T) {
	svc, repo, _, clock := newTestService(moment("2025-10-15 18:55"),
		newBooking(1, domain.StatusConfirmed, "2025-10-15 19:00"))
	ctx := context.Background()
	table := &models.TableActionRequest{UserID: staffID, RestaurantID: 1, TableID: 3}

	// Бронирование еще не наступило: освобождать нечего
	_, err := svc.FreeTable(ctx, table)
	assert.ErrorIs(t, err, ErrNothingToFree)

	resp, err := svc.Seat(ctx, 1, staffID)
	require.NoError(t, err)
	assert.Equal(t, "occupied", resp.Status)

	clock.now = moment("2025-10-15 20:30")
	resp, err = svc.FreeTable(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.items[1].Status)

	_, err = svc.FreeTable(ctx, table)
	assert.ErrorIs(t, err, ErrNothingToFree)
}

func TestFreeTable_StaleSeatingFromPreviousDay(t *testing.T) {
	svc, repo, _, _ := newTestService(moment("2025-10-15 20:00"),
		newBooking(1, domain.StatusOccupied, "2025-10-14 12:00"))

	resp, err := svc.FreeTable(context.Background(), &models.TableActionRequest{UserID: staffID, RestaurantID: 1, TableID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.StatusCompleted, repo.items[1].Status)

	assert.Nil(t, repo.filter.From)
	require.NotNil(t, repo.filter.To)
}

func TestSeatWalkIn_ExpiredPendingDoesNotBlock(t *testing.T) {
	stale := newBooking(1, domain.StatusPending, "2025-10-15 18:30")
	stale.CreatedAt = moment("2025-10-15 18:26")
	svc, _, _, _ := newTestService(moment("2025-10-15 18:29").Add(time.Second), stale)

	resp, err := svc.SeatWalkIn(context.Background(), &models.WalkInRequest{
		TableActionRequest: models.TableActionRequest{UserID: staffID, RestaurantID: 1, TableID: 3},
		GuestCount:         2,
	})
	require.NoError(t, err)
	assert.Equal(t, "occupied", resp.Status)
}

func TestFreeTable_PendingIsNotSeated(t *testing.T) {
	svc, _, _, _ := newTestService(moment("2025-10-15 19:05"),
		newBooking(1, domain.StatusPending, "2025-10-15 19:00"))

	_, err := svc.FreeTable(context.Background(), &models.TableActionRequest{UserID: staffID, RestaurantID: 1, TableID: 3})
	assert.ErrorIs(t, err, ErrNothingToFree)
}

func TestSeatWalkIn(t *testing.T) {
	ctx := context.Background()
	req := &models.WalkInRequest{
		TableActionRequest: models.TableActionRequest{UserID: staffID, RestaurantID: 1, TableID: 3},
		GuestCount:         2,
	}

	t.Run("free table", func(t *testing.T) {
		svc, repo, m, _ := newTestService(moment("2025-10-15 17:42"))

		resp, err := svc.SeatWalkIn(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "occupied", resp.Status)
		assert.Equal(t, "Гость", resp.GuestName)
		assert.Equal(t, "2025-10-15T17:42:00", resp.DateTime)
		assert.Len(t, repo.items, 1)
		assert.Equal(t, []string{"occupied"}, m.created)
	})

	t.Run("booking within look-ahead", func(t *testing.T) {
		svc, _, _, _ := newTestService(moment("2025-10-15 18:15"),
			newBooking(1, domain.StatusConfirmed, "2025-10-15 19:00"))

		_, err := svc.SeatWalkIn(ctx, req)
		assert.ErrorIs(t, err, ErrTableBusy)
	})

	t.Run("too many guests", func(t *testing.T) {
		svc, _, _, _ := newTestService(moment("2025-10-15 17:42"))

		big := *req
		big.GuestCount = 6
		_, err := svc.SeatWalkIn(ctx, &big)
		assert.ErrorIs(t, err, ErrTooManyGuests)
	})

	t.Run("not staff", func(t *testing.T) {
		svc, _, _, _ := newTestService(moment("2025-10-15 17:42"))

		other := *req
		other.UserID = visitorID
		_, err := svc.SeatWalkIn(ctx, &other)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetRestaurantBookings(t *testing.T) {
	svc, _, _, _ := newTestService(moment("2025-10-15 18:01"),
		newBooking(1, domain.StatusPending, "2025-10-15 19:00"),
		newBooking(2, domain.StatusConfirmed, "2025-10-15 20:00"))
	ctx := context.Background()

	resp, err := svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{
		UserID:       staffID,
		RestaurantID: 1,
		Status:       ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	_, err = svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{
		UserID:       staffID,
		RestaurantID: 1,
		Status:       ptr.Ptr("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{UserID: visitorID, RestaurantID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetRestaurantBookings(ctx, &models.GetRestaurantBookingsRequest{UserID: staffID, RestaurantID: 7})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
