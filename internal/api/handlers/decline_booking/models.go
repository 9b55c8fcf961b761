package decline_booking

import "github.com/m04kA/SMC-TableBookingService/internal/service/bookings/models"

// DeclineBookingRequest HTTP request model
type DeclineBookingRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *DeclineBookingRequest) ToServiceRequest(userID int64) *models.DeclineBookingRequest {
	return &models.DeclineBookingRequest{
		UserID: userID,
		Reason: r.Reason,
	}
}
