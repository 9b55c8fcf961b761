package get_floor_plan

import "time"

// Request модель запроса схемы зала
type Request struct {
	RestaurantID int64
}

// Response модель схемы зала на текущий момент
type Response struct {
	RestaurantID int64
	Now          time.Time
	Tables       []TableState
}

// TableState статус стола на схеме зала
type TableState struct {
	TableID   int64
	Number    string
	Floor     int
	Seats     int
	Status    string
	BookingID *int64     // Текущее бронирование стола
	NextAt    *time.Time // Начало следующего бронирования
	ExpiresIn *int       // Секунд до автоотклонения текущей заявки pending
}
