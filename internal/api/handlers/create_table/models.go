package create_table

import "github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	Number string `json:"number"` // "A7"
	Floor  int    `json:"floor"`
	Seats  int    `json:"seats"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTableRequest) ToServiceRequest(userID int64) *models.CreateTableRequest {
	return &models.CreateTableRequest{
		UserID: userID,
		Number: r.Number,
		Floor:  r.Floor,
		Seats:  r.Seats,
	}
}
