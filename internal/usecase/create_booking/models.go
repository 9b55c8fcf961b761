package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Request модель заявки гостя на бронирование стола
type Request struct {
	RestaurantID        int64            `validate:"gt=0"`
	TableID             int64            `validate:"gt=0"`
	GuestName           string           `validate:"required,max=100"`
	GuestPhone          string           `validate:"required,e164"`
	GuestCount          int              `validate:"gte=1"`
	Date                time.Time        `validate:"required"` // Дата начала смены (без времени)
	StartTime           types.TimeString `validate:"required"` // Начало слота, "HH:MM"
	AcknowledgeConflict bool             // Гость согласен на бронирование перед другим бронированием
}

// Response модель созданной заявки
type Response struct {
	ID               int64
	RestaurantID     int64
	TableID          int64
	GuestName        string
	GuestPhone       string
	GuestCount       int
	DateTime         time.Time // Локальное время ресторана
	Status           string
	PendingExpiresIn int // Секунд до автоматического отклонения
	CreatedAt        time.Time
}
