package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusOccupied  BookingStatus = "occupied"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a table reservation request or a seated party
// Бронирования не удаляются: declined и completed остаются в истории
type Booking struct {
	ID           int64
	RestaurantID int64
	TableID      int64
	GuestName    string
	GuestPhone   string
	GuestCount   int

	// DateTime локальное время ресторана (wall clock), без часового пояса
	DateTime time.Time
	Status   BookingStatus

	DeclineReason *string
	DecidedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the booking can no longer change status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusDeclined || b.Status == StatusCompleted
}

// IsPending returns true if the booking awaits a staff decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsSeated returns true if the booking holds the table (confirmed or occupied)
func (b *Booking) IsSeated() bool {
	return b.Status == StatusConfirmed || b.Status == StatusOccupied
}

// IsActive returns true for statuses that participate in table status classification
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.IsSeated()
}

// IsDueAt returns true if the booking start is at or before now
func (b *Booking) IsDueAt(now time.Time) bool {
	return !b.DateTime.After(now)
}

// BookingsFilter фильтр для получения бронирований ресторана
type BookingsFilter struct {
	RestaurantID int64           // Обязательный параметр
	TableID      *int64          // Фильтр по столу (опционально)
	From         *time.Time      // Начало периода по DateTime, включительно (опционально)
	To           *time.Time      // Конец периода по DateTime, не включительно (опционально)
	Statuses     []BookingStatus // Фильтр по статусам (опционально, пустой - все)
}

// ValidStatuses все известные статусы
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusDeclined,
	StatusOccupied,
	StatusCompleted,
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, valid := range ValidStatuses {
		if BookingStatus(s) == valid {
			return valid, true
		}
	}
	return "", false
}
