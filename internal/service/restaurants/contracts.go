package restaurants

import (
	"context"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	UpdateWorkHours(ctx context.Context, id int64, hours domain.WorkHours) error
	CreateTable(ctx context.Context, table *domain.Table) (*domain.Table, error)
	ListTables(ctx context.Context, restaurantID int64) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
