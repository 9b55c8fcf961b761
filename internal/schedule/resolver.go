package schedule

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// SlotQuery входные данные расчета слотов для одного стола на одну дату
type SlotQuery struct {
	Table    *domain.Table
	Date     time.Time         // Календарная дата начала смены
	Hours    domain.WorkHours  // Рабочие часы ресторана
	Bookings []*domain.Booking // Бронирования стола (бронирования других столов игнорируются)
	Now      time.Time         // Текущее локальное время ресторана
	Policy   domain.BookingPolicy
}

// ComputeAvailableSlots возвращает доступные для бронирования начала слотов по возрастанию
//
// Слот отбрасывается, если:
//   - он начинается раньше now + MinLeadMinutes;
//   - |слот - бронирование| < MinGapMinutes для любого занимающего стол бронирования смены.
//
// Заявка pending старше PendingTTLSeconds стол не занимает.
//
// Последний слот начинается не позже конца смены минус MinStayMinutes.
// Пустой результат означает, что бронирование на эту дату невозможно.
func ComputeAvailableSlots(q SlotQuery) []types.TimeString {
	interval := q.Policy.SlotIntervalMinutes
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	startMins, endMins := shiftBounds(q.Hours)
	day := startOfDay(q.Date)
	earliest := q.Now.Add(time.Duration(q.Policy.MinLeadMinutes) * time.Minute)
	occupied := occupiedOffsets(q)

	slots := make([]types.TimeString, 0)
	for m := startMins; m <= endMins-q.Policy.MinStayMinutes; m += interval {
		if day.Add(time.Duration(m) * time.Minute).Before(earliest) {
			continue
		}
		if isBlocked(m, occupied, q.Policy.MinGapMinutes) {
			continue
		}
		slots = append(slots, types.NewTimeStringFromMinutes(m))
	}

	return slots
}

// ContainsSlot проверяет, входит ли slot в список доступных
func ContainsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// NextBookingWithin возвращает ближайшее занимающее стол бронирование, которое начинается
// позже слота, но раньше чем через horizon; nil, если такого нет
// Используется для мягкого предупреждения: гость должен явно подтвердить бронирование
func NextBookingWithin(q SlotQuery, slot types.TimeString, horizon time.Duration) *domain.Booking {
	slotAt := SlotDateTime(q.Date, q.Hours, slot)

	var next *domain.Booking
	for _, b := range q.Bookings {
		if !q.occupies(b) {
			continue
		}
		if !b.DateTime.After(slotAt) || b.DateTime.Sub(slotAt) >= horizon {
			continue
		}
		if next == nil || b.DateTime.Before(next.DateTime) {
			next = b
		}
	}
	return next
}

// occupiedOffsets переводит занимающие стол бронирования смены в минуты от полуночи даты смены
func occupiedOffsets(q SlotQuery) []int {
	shiftStart, shiftEnd := ShiftWindow(q.Date, q.Hours)

	offsets := make([]int, 0, len(q.Bookings))
	for _, b := range q.Bookings {
		if !q.occupies(b) {
			continue
		}
		if b.DateTime.Before(shiftStart) || !b.DateTime.Before(shiftEnd) {
			continue
		}
		offsets = append(offsets, slotOffset(b.DateTime.Hour()*60+b.DateTime.Minute(), q.Hours))
	}
	return offsets
}

// occupies проверяет, занимает ли бронирование стол запроса
func (q SlotQuery) occupies(b *domain.Booking) bool {
	if !belongsTo(b, q.Table) || !q.Policy.BlocksSlots(b.Status) {
		return false
	}
	ttl := q.Policy.PendingTTL()
	return ttl <= 0 || !IsExpired(b, q.Now, ttl)
}

func isBlocked(candidate int, occupied []int, gap int) bool {
	for _, existing := range occupied {
		diff := candidate - existing
		if diff < 0 {
			diff = -diff
		}
		if diff < gap {
			return true
		}
	}
	return false
}

func belongsTo(b *domain.Booking, table *domain.Table) bool {
	return table == nil || b.TableID == table.ID
}
