package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"` // "2025-10-15"
	RestaurantID    int64    `json:"restaurantId"`
	TableID         int64    `json:"tableId"`
	Seats           int      `json:"seats"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Slots           []string `json:"slots"` // ["18:00", "18:30"]
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(restaurantID, tableID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		RestaurantID: restaurantID,
		TableID:      tableID,
		Date:         date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		RestaurantID:    resp.RestaurantID,
		TableID:         resp.TableID,
		Seats:           resp.Seats,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}
