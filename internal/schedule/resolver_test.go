package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

var testTable = &domain.Table{ID: 7, RestaurantID: 1, Number: "A7", Seats: 4}

func booking(id int64, status domain.BookingStatus, dateTime time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		TableID:    testTable.ID,
		GuestName:  "Guest",
		GuestCount: 2,
		DateTime:   dateTime,
		Status:     status,
		CreatedAt:  dateTime.Add(-24 * time.Hour),
	}
}

// requestedAt задает момент подачи заявки; по умолчанию бронирование создано за сутки
func requestedAt(b *domain.Booking, createdAt time.Time) *domain.Booking {
	b.CreatedAt = createdAt
	return b
}

func dayQuery(now time.Time, bookings ...*domain.Booking) SlotQuery {
	return SlotQuery{
		Table:    testTable,
		Date:     at("2025-10-15", "00:00"),
		Hours:    hours("10:00", "23:00"),
		Bookings: bookings,
		Now:      now,
		Policy:   domain.DefaultBookingPolicy(),
	}
}

func TestComputeAvailableSlots_NoBookings(t *testing.T) {
	slots := ComputeAvailableSlots(dayQuery(at("2025-10-15", "08:00")))

	require.Len(t, slots, 25)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("22:00"), slots[len(slots)-1])
}

func TestComputeAvailableSlots_SymmetricGap(t *testing.T) {
	q := dayQuery(at("2025-10-15", "08:00"), booking(1, domain.StatusConfirmed, at("2025-10-15", "19:00")))

	slots := ComputeAvailableSlots(q)

	assert.Contains(t, slots, types.TimeString("17:30"))
	assert.Contains(t, slots, types.TimeString("18:00"))
	assert.NotContains(t, slots, types.TimeString("18:30"))
	assert.NotContains(t, slots, types.TimeString("19:00"))
	assert.NotContains(t, slots, types.TimeString("19:30"))
	assert.Contains(t, slots, types.TimeString("20:00"))
}

func TestComputeAvailableSlots_LeadTimeToday(t *testing.T) {
	slots := ComputeAvailableSlots(dayQuery(at("2025-10-15", "12:10")))
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("12:30"), slots[0])

	slots = ComputeAvailableSlots(dayQuery(at("2025-10-15", "12:15")))
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("12:30"), slots[0])

	slots = ComputeAvailableSlots(dayQuery(at("2025-10-15", "12:16")))
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("13:00"), slots[0])
}

func TestComputeAvailableSlots_FutureDateIgnoresLeadTime(t *testing.T) {
	slots := ComputeAvailableSlots(dayQuery(at("2025-10-14", "22:50")))

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
}

func TestComputeAvailableSlots_PastDateIsEmpty(t *testing.T) {
	assert.Empty(t, ComputeAvailableSlots(dayQuery(at("2025-10-16", "09:00"))))
}

func TestComputeAvailableSlots_OvernightShift(t *testing.T) {
	q := dayQuery(at("2025-10-15", "20:00"))
	q.Hours = hours("22:00", "02:00")

	slots := ComputeAvailableSlots(q)

	assert.Equal(t, []types.TimeString{"22:00", "22:30", "23:00", "23:30", "00:00", "00:30", "01:00"}, slots)
}

func TestComputeAvailableSlots_OvernightBookingAfterMidnight(t *testing.T) {
	q := dayQuery(at("2025-10-15", "20:00"),
		booking(1, domain.StatusConfirmed, at("2025-10-16", "00:30")),
		// хвост смены предыдущей ночи не влияет на смену 15-го
		booking(2, domain.StatusConfirmed, at("2025-10-15", "00:30")),
	)
	q.Hours = hours("22:00", "02:00")

	slots := ComputeAvailableSlots(q)

	assert.Equal(t, []types.TimeString{"22:00", "22:30", "23:00", "23:30"}, slots)
}

func TestComputeAvailableSlots_StatusPolicy(t *testing.T) {
	now := at("2025-10-15", "08:00")
	pending := requestedAt(booking(1, domain.StatusPending, at("2025-10-15", "13:00")), now.Add(-time.Minute))

	slots := ComputeAvailableSlots(dayQuery(now, pending))
	assert.NotContains(t, slots, types.TimeString("13:00"))

	q := dayQuery(now, pending)
	q.Policy.PendingBlocksSlots = false
	assert.Contains(t, ComputeAvailableSlots(q), types.TimeString("13:00"))

	for _, status := range []domain.BookingStatus{domain.StatusDeclined, domain.StatusCompleted} {
		slots := ComputeAvailableSlots(dayQuery(now, booking(2, status, at("2025-10-15", "13:00"))))
		assert.Contains(t, slots, types.TimeString("13:00"), "status=%s", status)
	}

	slots = ComputeAvailableSlots(dayQuery(now, booking(3, domain.StatusOccupied, at("2025-10-15", "13:00"))))
	assert.NotContains(t, slots, types.TimeString("13:00"))
}

func TestComputeAvailableSlots_ExpiredPendingReleasesSlot(t *testing.T) {
	now := at("2025-10-15", "12:00")
	ttl := domain.DefaultBookingPolicy().PendingTTL()

	stale := requestedAt(booking(1, domain.StatusPending, at("2025-10-15", "19:00")), now.Add(-ttl-time.Second))
	assert.Contains(t, ComputeAvailableSlots(dayQuery(now, stale)), types.TimeString("19:00"))

	// ровно на границе TTL заявка еще живая
	onEdge := requestedAt(booking(2, domain.StatusPending, at("2025-10-15", "19:00")), now.Add(-ttl))
	assert.NotContains(t, ComputeAvailableSlots(dayQuery(now, onEdge)), types.TimeString("19:00"))

	q := dayQuery(now, stale)
	q.Policy.PendingTTLSeconds = 0
	assert.NotContains(t, ComputeAvailableSlots(q), types.TimeString("19:00"))
}

func TestNextBookingWithin_SkipsExpiredPending(t *testing.T) {
	now := at("2025-10-15", "12:00")
	stale := requestedAt(booking(1, domain.StatusPending, at("2025-10-15", "18:30")), now.Add(-181*time.Second))
	fresh := requestedAt(booking(2, domain.StatusPending, at("2025-10-15", "18:30")), now.Add(-time.Minute))

	assert.Nil(t, NextBookingWithin(dayQuery(now, stale), "17:00", 2*time.Hour))

	next := NextBookingWithin(dayQuery(now, stale, fresh), "17:00", 2*time.Hour)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), next.ID)
}

func TestComputeAvailableSlots_IgnoresOtherTables(t *testing.T) {
	other := booking(1, domain.StatusConfirmed, at("2025-10-15", "13:00"))
	other.TableID = 99

	slots := ComputeAvailableSlots(dayQuery(at("2025-10-15", "08:00"), other))

	assert.Contains(t, slots, types.TimeString("13:00"))
}

func TestComputeAvailableSlots_CanBeEmpty(t *testing.T) {
	q := dayQuery(at("2025-10-15", "08:00"), booking(1, domain.StatusConfirmed, at("2025-10-15", "10:30")))
	q.Hours = hours("10:00", "12:00")

	slots := ComputeAvailableSlots(q)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	q := dayQuery(at("2025-10-15", "11:05"),
		booking(1, domain.StatusConfirmed, at("2025-10-15", "14:00")),
		booking(2, domain.StatusPending, at("2025-10-15", "19:30")),
	)

	assert.Equal(t, ComputeAvailableSlots(q), ComputeAvailableSlots(q))
}

func TestComputeAvailableSlots_MonotonicInBookings(t *testing.T) {
	base := []*domain.Booking{booking(1, domain.StatusConfirmed, at("2025-10-15", "14:00"))}
	before := ComputeAvailableSlots(dayQuery(at("2025-10-15", "08:00"), base...))

	for m := 9 * 60; m <= 23*60; m += 15 {
		added := booking(2, domain.StatusConfirmed, at("2025-10-15", "00:00").Add(time.Duration(m)*time.Minute))
		after := ComputeAvailableSlots(dayQuery(at("2025-10-15", "08:00"), append(base, added)...))

		for _, slot := range after {
			assert.Contains(t, before, slot, "booking at minute %d added slot %s", m, slot)
		}
	}
}

func TestNextBookingWithin(t *testing.T) {
	later := booking(1, domain.StatusConfirmed, at("2025-10-15", "18:30"))
	tooLate := booking(2, domain.StatusConfirmed, at("2025-10-15", "19:00"))
	earlier := booking(3, domain.StatusConfirmed, at("2025-10-15", "15:00"))
	declined := booking(4, domain.StatusDeclined, at("2025-10-15", "17:30"))

	q := dayQuery(at("2025-10-15", "08:00"), tooLate, earlier, declined, later)

	next := NextBookingWithin(q, "17:00", 2*time.Hour)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), next.ID)

	assert.Nil(t, NextBookingWithin(dayQuery(at("2025-10-15", "08:00"), tooLate), "17:00", 2*time.Hour))
}

func TestContainsSlot(t *testing.T) {
	slots := []types.TimeString{"10:00", "10:30"}
	assert.True(t, ContainsSlot(slots, "10:30"))
	assert.False(t, ContainsSlot(slots, "11:00"))
}
