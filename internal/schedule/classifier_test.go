package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

func TestClassifyTableStatus(t *testing.T) {
	now := at("2025-10-15", "19:00")
	policy := domain.DefaultBookingPolicy()
	fresh := now.Add(-time.Minute)
	stale := now.Add(-181 * time.Second)

	otherTable := booking(50, domain.StatusConfirmed, at("2025-10-15", "18:00"))
	otherTable.TableID = 99

	tests := []struct {
		name     string
		bookings []*domain.Booking
		want     domain.TableStatus
	}{
		{
			name: "no bookings",
			want: domain.TableAvailable,
		},
		{
			name:     "due pending request",
			bookings: []*domain.Booking{requestedAt(booking(1, domain.StatusPending, at("2025-10-15", "18:30")), fresh)},
			want:     domain.TablePending,
		},
		{
			name:     "expired due pending request",
			bookings: []*domain.Booking{requestedAt(booking(1, domain.StatusPending, at("2025-10-15", "18:30")), stale)},
			want:     domain.TableAvailable,
		},
		{
			name: "expired pending uncovers earlier seated booking",
			bookings: []*domain.Booking{
				booking(1, domain.StatusOccupied, at("2025-10-15", "17:00")),
				requestedAt(booking(2, domain.StatusPending, at("2025-10-15", "18:30")), stale),
			},
			want: domain.TableConfirmed,
		},
		{
			name:     "seated confirmed booking",
			bookings: []*domain.Booking{booking(1, domain.StatusConfirmed, at("2025-10-15", "18:00"))},
			want:     domain.TableConfirmed,
		},
		{
			name:     "walk-in occupied exactly now",
			bookings: []*domain.Booking{booking(1, domain.StatusOccupied, now)},
			want:     domain.TableConfirmed,
		},
		{
			name: "latest due booking wins over older pending",
			bookings: []*domain.Booking{
				booking(1, domain.StatusPending, at("2025-10-15", "17:00")),
				booking(2, domain.StatusConfirmed, at("2025-10-15", "18:30")),
			},
			want: domain.TableConfirmed,
		},
		{
			name: "latest due pending wins over older confirmed",
			bookings: []*domain.Booking{
				booking(1, domain.StatusConfirmed, at("2025-10-15", "17:00")),
				requestedAt(booking(2, domain.StatusPending, at("2025-10-15", "18:30")), fresh),
			},
			want: domain.TablePending,
		},
		{
			name:     "completed booking frees the table",
			bookings: []*domain.Booking{booking(1, domain.StatusCompleted, at("2025-10-15", "18:30"))},
			want:     domain.TableAvailable,
		},
		{
			name:     "confirmed booking inside look-ahead",
			bookings: []*domain.Booking{booking(1, domain.StatusConfirmed, now.Add(45*time.Minute))},
			want:     domain.TableConfirmed,
		},
		{
			name:     "pending booking inside look-ahead",
			bookings: []*domain.Booking{requestedAt(booking(1, domain.StatusPending, now.Add(30*time.Minute)), fresh)},
			want:     domain.TableConfirmed,
		},
		{
			name:     "expired pending inside look-ahead",
			bookings: []*domain.Booking{requestedAt(booking(1, domain.StatusPending, now.Add(30*time.Minute)), stale)},
			want:     domain.TableAvailable,
		},
		{
			name:     "booking beyond look-ahead",
			bookings: []*domain.Booking{booking(1, domain.StatusConfirmed, now.Add(90*time.Minute))},
			want:     domain.TableAvailable,
		},
		{
			name:     "declined future booking ignored",
			bookings: []*domain.Booking{booking(1, domain.StatusDeclined, now.Add(15*time.Minute))},
			want:     domain.TableAvailable,
		},
		{
			name:     "other table ignored",
			bookings: []*domain.Booking{otherTable},
			want:     domain.TableAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTableStatus(testTable, tt.bookings, now, policy))
		})
	}
}

func TestDueBooking_PicksLatestNotExceedingNow(t *testing.T) {
	now := at("2025-10-15", "19:00")
	older := booking(1, domain.StatusConfirmed, at("2025-10-15", "12:00"))
	latest := booking(2, domain.StatusOccupied, at("2025-10-15", "18:00"))
	future := booking(3, domain.StatusConfirmed, at("2025-10-15", "20:00"))

	ttl := domain.DefaultBookingPolicy().PendingTTL()

	due := DueBooking(testTable, []*domain.Booking{latest, future, older}, now, ttl)

	require.NotNil(t, due)
	assert.Equal(t, int64(2), due.ID)
	assert.Nil(t, DueBooking(testTable, []*domain.Booking{future}, now, ttl))
}

func TestNextBooking(t *testing.T) {
	now := at("2025-10-15", "19:00")
	ttl := domain.DefaultBookingPolicy().PendingTTL()
	soon := requestedAt(booking(1, domain.StatusPending, at("2025-10-15", "20:00")), now.Add(-time.Minute))
	later := booking(2, domain.StatusConfirmed, at("2025-10-15", "21:00"))

	next := NextBooking(testTable, []*domain.Booking{later, soon}, now, ttl)

	require.NotNil(t, next)
	assert.Equal(t, int64(1), next.ID)

	soon.CreatedAt = now.Add(-ttl - time.Second)
	next = NextBooking(testTable, []*domain.Booking{later, soon}, now, ttl)

	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.ID)
}
