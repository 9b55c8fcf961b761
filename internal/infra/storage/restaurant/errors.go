package restaurant

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant.repository: restaurant not found")

	// ErrTableNotFound возвращается, когда стол не найден в ресторане
	ErrTableNotFound = errors.New("restaurant.repository: table not found")

	// ErrDuplicateTable возвращается при попытке создать стол с существующим номером
	ErrDuplicateTable = errors.New("restaurant.repository: duplicate table number")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("restaurant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("restaurant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("restaurant.repository: failed to scan row")
)
