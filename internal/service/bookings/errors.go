package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrTableNotFound возвращается, когда стол не найден в ресторане
	ErrTableNotFound = errors.New("table not found")

	// ErrAccessDenied возвращается, когда пользователь не является сотрудником ресторана
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrBookingExpired возвращается при попытке подтвердить просроченную заявку
	ErrBookingExpired = errors.New("booking request expired")

	// ErrNothingToFree возвращается, когда за столом нет гостей
	ErrNothingToFree = errors.New("table has no seated booking")

	// ErrTableBusy возвращается, когда стол занят или скоро будет занят
	ErrTableBusy = errors.New("table is not available")

	// ErrTooManyGuests возвращается, когда гостей больше, чем мест за столом
	ErrTooManyGuests = errors.New("guest count exceeds table seats")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
