package restaurants

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrAccessDenied возвращается, когда пользователь не является сотрудником ресторана
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidWorkHours возвращается при некорректных рабочих часах
	ErrInvalidWorkHours = errors.New("invalid work hours")

	// ErrTableAlreadyExists возвращается при попытке создать стол с существующим номером
	ErrTableAlreadyExists = errors.New("table already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
