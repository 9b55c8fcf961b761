package update_work_hours

import "github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"

// UpdateWorkHoursRequest HTTP request model
type UpdateWorkHoursRequest struct {
	WorkStarts string `json:"workStarts"` // "22:00"
	WorkEnds   string `json:"workEnds"`   // "02:00" для ночной смены
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWorkHoursRequest) ToServiceRequest(userID int64) *models.UpdateWorkHoursRequest {
	return &models.UpdateWorkHoursRequest{
		UserID:     userID,
		WorkStarts: r.WorkStarts,
		WorkEnds:   r.WorkEnds,
	}
}
