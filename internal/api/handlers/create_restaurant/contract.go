package create_restaurant

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"
)

type RestaurantService interface {
	Create(ctx context.Context, req *models.CreateRestaurantRequest) (*models.RestaurantResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
