package create_restaurant

import "github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"

// CreateRestaurantRequest HTTP request model
type CreateRestaurantRequest struct {
	Name       string  `json:"name"`
	WorkStarts string  `json:"workStarts"` // "10:00"
	WorkEnds   string  `json:"workEnds"`   // "23:00"
	StaffIDs   []int64 `json:"staffIds,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRestaurantRequest) ToServiceRequest(userID int64) *models.CreateRestaurantRequest {
	return &models.CreateRestaurantRequest{
		UserID:     userID,
		Name:       r.Name,
		WorkStarts: r.WorkStarts,
		WorkEnds:   r.WorkEnds,
		StaffIDs:   r.StaffIDs,
	}
}
