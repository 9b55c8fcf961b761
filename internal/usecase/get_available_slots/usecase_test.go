package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-TableBookingService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeMetrics struct{ offered []int }

func (m *fakeMetrics) SlotsOffered(count int) { m.offered = append(m.offered, count) }

type fakeRestaurants struct {
	restaurant *domain.Restaurant
	table      *domain.Table
	err        error
}

func (f *fakeRestaurants) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRestaurants) GetTableByID(_ context.Context, restaurantID, tableID int64) (*domain.Table, error) {
	if f.table == nil || f.table.ID != tableID || f.table.RestaurantID != restaurantID {
		return nil, restaurantRepo.ErrTableNotFound
	}
	return f.table, nil
}

type fakeBookings struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (f *fakeBookings) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, nil
}

func moment(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestUseCase(now time.Time, bookings ...*domain.Booking) (*UseCase, *fakeBookings, *fakeMetrics) {
	restaurants := &fakeRestaurants{
		restaurant: &domain.Restaurant{ID: 1, Name: "Bistro", WorkStarts: "10:00", WorkEnds: "23:00"},
		table:      &domain.Table{ID: 3, RestaurantID: 1, Number: "3", Seats: 4},
	}
	bookingRepo := &fakeBookings{bookings: bookings}
	m := &fakeMetrics{}

	uc := NewUseCase(restaurants, bookingRepo, domain.DefaultBookingPolicy(), time.UTC, m, nopLogger{})
	uc.timeProvider = fixedTime{now: now}

	return uc, bookingRepo, m
}

func TestExecute_ReturnsSlotsAroundBookings(t *testing.T) {
	booked := &domain.Booking{ID: 1, TableID: 3, Status: domain.StatusConfirmed, DateTime: moment("2025-10-15 19:00")}
	uc, repo, m := newTestUseCase(moment("2025-10-15 08:00"), booked)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		TableID:      3,
		Date:         moment("2025-10-15 00:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.IntervalMinutes)
	assert.Equal(t, 4, resp.Seats)
	assert.Contains(t, resp.Slots, types.TimeString("18:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("18:30"))
	assert.Contains(t, resp.Slots, types.TimeString("20:00"))
	assert.Equal(t, []int{len(resp.Slots)}, m.offered)

	require.NotNil(t, repo.filter.TableID)
	assert.Equal(t, int64(3), *repo.filter.TableID)
	assert.Equal(t, moment("2025-10-15 00:00"), *repo.filter.From)
	assert.Equal(t, moment("2025-10-17 00:00"), *repo.filter.To)
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	uc, _, _ := newTestUseCase(moment("2025-10-16 09:00"))

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: 1, TableID: 3, Date: moment("2025-10-15 00:00")})
	require.NoError(t, err)

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	uc, _, _ := newTestUseCase(moment("2025-10-15 08:00"))
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{RestaurantID: 0, TableID: 3, Date: moment("2025-10-15 00:00")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{RestaurantID: 1, TableID: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{RestaurantID: 2, TableID: 3, Date: moment("2025-10-15 00:00")})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	_, err = uc.Execute(ctx, &Request{RestaurantID: 1, TableID: 9, Date: moment("2025-10-15 00:00")})
	assert.ErrorIs(t, err, ErrTableNotFound)

	uc.restaurantRepo = &fakeRestaurants{err: errors.New("connection refused")}
	_, err = uc.Execute(ctx, &Request{RestaurantID: 1, TableID: 3, Date: moment("2025-10-15 00:00")})
	assert.ErrorIs(t, err, ErrInternal)
}
