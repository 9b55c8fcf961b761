package domain

import "time"

// BookingPolicy политика расчета слотов и статусов столов
type BookingPolicy struct {
	SlotIntervalMinutes    int  // Шаг сетки слотов
	MinLeadMinutes         int  // Минимальное время от "сейчас" до начала слота
	MinGapMinutes          int  // Минимальный интервал между бронированиями одного стола
	MinStayMinutes         int  // Последний слот начинается не позже конца смены минус это значение
	LookAheadMinutes       int  // Окно, в котором будущее бронирование помечает стол занятым
	PendingTTLSeconds      int  // Время жизни заявки без ответа персонала
	ConflictHorizonMinutes int  // Горизонт предупреждения о следующем бронировании
	PendingBlocksSlots     bool // Учитывать ли заявки pending при расчете слотов
}

// DefaultBookingPolicy returns the policy with default values
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		SlotIntervalMinutes:    DefaultSlotIntervalMinutes,
		MinLeadMinutes:         DefaultMinLeadMinutes,
		MinGapMinutes:          DefaultMinGapMinutes,
		MinStayMinutes:         DefaultMinStayMinutes,
		LookAheadMinutes:       DefaultLookAheadMinutes,
		PendingTTLSeconds:      DefaultPendingTTLSeconds,
		ConflictHorizonMinutes: DefaultConflictHorizonMinutes,
		PendingBlocksSlots:     true,
	}
}

// BlocksSlots returns true if a booking with the status occupies the table for slot computation
func (p BookingPolicy) BlocksSlots(status BookingStatus) bool {
	switch status {
	case StatusConfirmed, StatusOccupied:
		return true
	case StatusPending:
		return p.PendingBlocksSlots
	default:
		return false
	}
}

// PendingTTL returns the pending request lifetime
func (p BookingPolicy) PendingTTL() time.Duration {
	return time.Duration(p.PendingTTLSeconds) * time.Second
}

// LookAhead returns the look-ahead window of the table status classifier
func (p BookingPolicy) LookAhead() time.Duration {
	return time.Duration(p.LookAheadMinutes) * time.Minute
}
