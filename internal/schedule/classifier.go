package schedule

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// DueBooking возвращает текущее бронирование стола: самое позднее активное
// (pending, confirmed, occupied) бронирование, начавшееся не позже now.
// Более ранние считаются завершившимися (оборот стола). nil, если таких нет.
// Заявка pending старше pendingTTL уже не активна, даже если автоотклонение еще не прошло.
func DueBooking(table *domain.Table, bookings []*domain.Booking, now time.Time, pendingTTL time.Duration) *domain.Booking {
	var due *domain.Booking
	for _, b := range bookings {
		if !belongsTo(b, table) || !isLive(b, now, pendingTTL) || !b.IsDueAt(now) {
			continue
		}
		if due == nil || b.DateTime.After(due.DateTime) ||
			(b.DateTime.Equal(due.DateTime) && b.ID > due.ID) {
			due = b
		}
	}
	return due
}

// NextBooking возвращает ближайшее будущее активное бронирование стола
func NextBooking(table *domain.Table, bookings []*domain.Booking, now time.Time, pendingTTL time.Duration) *domain.Booking {
	var next *domain.Booking
	for _, b := range bookings {
		if !belongsTo(b, table) || !isLive(b, now, pendingTTL) || b.IsDueAt(now) {
			continue
		}
		if next == nil || b.DateTime.Before(next.DateTime) {
			next = b
		}
	}
	return next
}

// ClassifyTableStatus определяет статус стола для схемы зала на момент now
//
// Текущее бронирование pending дает pending, confirmed/occupied дает confirmed.
// Без текущего бронирования стол помечается confirmed, если следующее бронирование
// начинается в пределах LookAheadMinutes, чтобы не сажать гостей без брони перед резервом.
func ClassifyTableStatus(table *domain.Table, bookings []*domain.Booking, now time.Time, policy domain.BookingPolicy) domain.TableStatus {
	ttl := policy.PendingTTL()
	if due := DueBooking(table, bookings, now, ttl); due != nil {
		if due.IsPending() {
			return domain.TablePending
		}
		return domain.TableConfirmed
	}

	if next := NextBooking(table, bookings, now, ttl); next != nil && next.DateTime.Sub(now) <= policy.LookAhead() {
		return domain.TableConfirmed
	}

	return domain.TableAvailable
}

// isLive активное бронирование, кроме просроченной заявки pending
// pendingTTL <= 0 отключает проверку срока
func isLive(b *domain.Booking, now time.Time, pendingTTL time.Duration) bool {
	if !b.IsActive() {
		return false
	}
	return pendingTTL <= 0 || !IsExpired(b, now, pendingTTL)
}
