package list_tables

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants/models"
)

type RestaurantService interface {
	ListTables(ctx context.Context, restaurantID int64) (*models.TableListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
