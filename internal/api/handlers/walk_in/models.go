package walk_in

import "github.com/m04kA/SMC-TableBookingService/internal/service/bookings/models"

// WalkInRequest HTTP request model
type WalkInRequest struct {
	GuestName  string `json:"guestName,omitempty"` // по умолчанию "Гость"
	GuestCount int    `json:"guestCount"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *WalkInRequest) ToServiceRequest(userID, restaurantID, tableID int64) *models.WalkInRequest {
	return &models.WalkInRequest{
		TableActionRequest: models.TableActionRequest{
			UserID:       userID,
			RestaurantID: restaurantID,
			TableID:      tableID,
		},
		GuestName:  r.GuestName,
		GuestCount: r.GuestCount,
	}
}
