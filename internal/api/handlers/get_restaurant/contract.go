package get_restaurant

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"
)

type RestaurantService interface {
	GetByID(ctx context.Context, id int64) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
