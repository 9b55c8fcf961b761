package domain

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// WorkHours single daily shift; Ends <= Starts means the shift crosses midnight
type WorkHours struct {
	Starts types.TimeString
	Ends   types.TimeString
}

// IsOvernight returns true if the shift ends on the next calendar day
func (h WorkHours) IsOvernight() bool {
	return h.Ends.Minutes() <= h.Starts.Minutes()
}

// Validate checks both bounds are well-formed "HH:MM"
func (h WorkHours) Validate() error {
	if err := h.Starts.Validate(); err != nil {
		return err
	}
	return h.Ends.Validate()
}

// Restaurant owns tables and bookings
type Restaurant struct {
	ID         int64
	Name       string
	WorkStarts types.TimeString
	WorkEnds   types.TimeString
	StaffIDs   []int64 // Пользователи, которым доступна очередь заявок
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Hours returns the restaurant shift
func (r *Restaurant) Hours() WorkHours {
	return WorkHours{Starts: r.WorkStarts, Ends: r.WorkEnds}
}

// IsStaff returns true if the user may manage bookings of the restaurant
func (r *Restaurant) IsStaff(userID int64) bool {
	for _, id := range r.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Table is a bookable table; geometry belongs to the floor-plan editor and is not stored here
type Table struct {
	ID           int64
	RestaurantID int64
	Number       string
	Floor        int
	Seats        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Fits returns true if the party fits the table
func (t *Table) Fits(guestCount int) bool {
	return guestCount >= 1 && guestCount <= t.Seats
}

// TableStatus status of a table on the floor map, derived on every request
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TablePending   TableStatus = "pending"
	TableConfirmed TableStatus = "confirmed"
)
