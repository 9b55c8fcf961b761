package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// transitions допустимые переходы статусов; declined и completed терминальные
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusDeclined},
	domain.StatusConfirmed: {domain.StatusOccupied, domain.StatusDeclined, domain.StatusCompleted},
	domain.StatusOccupied:  {domain.StatusCompleted},
}

// CanTransition проверяет, допустим ли переход from -> to
func CanTransition(from, to domain.BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsInitialStatus проверяет, может ли бронирование быть создано в статусе status:
// заявка гостя создается в pending, гость без брони сразу в occupied
func IsInitialStatus(status domain.BookingStatus) bool {
	return status == domain.StatusPending || status == domain.StatusOccupied
}

// IsExpired возвращает true, если заявка pending ждет ответа дольше ttl
func IsExpired(b *domain.Booking, now time.Time, ttl time.Duration) bool {
	return b.IsPending() && now.Sub(b.CreatedAt) > ttl
}

// PendingSecondsLeft возвращает max(0, ttl - прошедшие с createdAt целые секунды)
func PendingSecondsLeft(createdAt, now time.Time, ttl time.Duration) int {
	elapsed := int(now.Sub(createdAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	left := int(ttl/time.Second) - elapsed
	if left < 0 {
		return 0
	}
	return left
}

// FormatCountdown форматирует секунды как "M:SS"
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
