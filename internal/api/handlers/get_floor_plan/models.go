package get_floor_plan

import (
	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/internal/schedule"
	getFloorPlan "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_floor_plan"
)

// FloorPlanResponse HTTP response model
type FloorPlanResponse struct {
	RestaurantID int64        `json:"restaurantId"`
	Now          string       `json:"now"`
	Tables       []TableState `json:"tables"`
}

// TableState статус стола на схеме зала
type TableState struct {
	TableID   int64   `json:"tableId"`
	Number    string  `json:"number"`
	Floor     int     `json:"floor"`
	Seats     int     `json:"seats"`
	Status    string  `json:"status"` // available | pending | confirmed
	BookingID *int64  `json:"bookingId,omitempty"`
	NextAt    *string `json:"nextBookingAt,omitempty"`
	ExpiresIn *int    `json:"expiresInSeconds,omitempty"`
	Countdown *string `json:"countdown,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFloorPlan.Response) *FloorPlanResponse {
	tables := make([]TableState, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		state := TableState{
			TableID:   t.TableID,
			Number:    t.Number,
			Floor:     t.Floor,
			Seats:     t.Seats,
			Status:    t.Status,
			BookingID: t.BookingID,
			ExpiresIn: t.ExpiresIn,
		}
		if t.NextAt != nil {
			next := t.NextAt.Format(domain.DateTimeFormat)
			state.NextAt = &next
		}
		if t.ExpiresIn != nil {
			countdown := schedule.FormatCountdown(*t.ExpiresIn)
			state.Countdown = &countdown
		}
		tables = append(tables, state)
	}

	return &FloorPlanResponse{
		RestaurantID: resp.RestaurantID,
		Now:          resp.Now.Format(domain.DateTimeFormat),
		Tables:       tables,
	}
}
