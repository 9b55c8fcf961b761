package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]domain.BookingStatus{
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusPending, domain.StatusDeclined},
		{domain.StatusConfirmed, domain.StatusOccupied},
		{domain.StatusConfirmed, domain.StatusDeclined},
		{domain.StatusConfirmed, domain.StatusCompleted},
		{domain.StatusOccupied, domain.StatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	forbidden := [][2]domain.BookingStatus{
		{domain.StatusDeclined, domain.StatusConfirmed},
		{domain.StatusCompleted, domain.StatusOccupied},
		{domain.StatusPending, domain.StatusOccupied},
		{domain.StatusPending, domain.StatusCompleted},
		{domain.StatusOccupied, domain.StatusDeclined},
		{domain.StatusConfirmed, domain.StatusPending},
	}
	for _, tr := range forbidden {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestIsInitialStatus(t *testing.T) {
	assert.True(t, IsInitialStatus(domain.StatusPending))
	assert.True(t, IsInitialStatus(domain.StatusOccupied))
	assert.False(t, IsInitialStatus(domain.StatusConfirmed))
}

func TestPendingCountdown(t *testing.T) {
	createdAt := at("2025-10-15", "19:00")
	ttl := 180 * time.Second

	tests := []struct {
		elapsed time.Duration
		left    int
		label   string
	}{
		{elapsed: 0, left: 180, label: "3:00"},
		{elapsed: 61 * time.Second, left: 119, label: "1:59"},
		{elapsed: 179*time.Second + 500*time.Millisecond, left: 1, label: "0:01"},
		{elapsed: 180 * time.Second, left: 0, label: "0:00"},
		{elapsed: 10 * time.Minute, left: 0, label: "0:00"},
	}

	for _, tt := range tests {
		left := PendingSecondsLeft(createdAt, createdAt.Add(tt.elapsed), ttl)
		assert.Equal(t, tt.left, left, "elapsed=%s", tt.elapsed)
		assert.Equal(t, tt.label, FormatCountdown(left))
	}
}

func TestIsExpired(t *testing.T) {
	b := booking(1, domain.StatusPending, at("2025-10-15", "21:00"))
	b.CreatedAt = at("2025-10-15", "19:00")
	ttl := 180 * time.Second

	assert.False(t, IsExpired(b, b.CreatedAt.Add(180*time.Second), ttl))
	assert.True(t, IsExpired(b, b.CreatedAt.Add(181*time.Second), ttl))

	b.Status = domain.StatusConfirmed
	assert.False(t, IsExpired(b, b.CreatedAt.Add(time.Hour), ttl))
}
