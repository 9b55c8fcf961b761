package update_work_hours

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"
)

type RestaurantService interface {
	UpdateWorkHours(ctx context.Context, restaurantID int64, req *models.UpdateWorkHoursRequest) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
