package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов стола
type Request struct {
	RestaurantID int64     // ID ресторана
	TableID      int64     // ID стола
	Date         time.Time // Дата начала смены (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	RestaurantID    int64              // ID ресторана
	TableID         int64              // ID стола
	Seats           int                // Вместимость стола
	IntervalMinutes int                // Шаг сетки слотов
	Slots           []types.TimeString // Доступные начала слотов по возрастанию
}
