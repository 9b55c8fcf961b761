package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrTableNotFound возвращается, когда стол не найден в ресторане
	ErrTableNotFound = errors.New("create_booking: table not found")

	// ErrTooManyGuests возвращается, когда гостей больше, чем мест за столом
	ErrTooManyGuests = errors.New("create_booking: guest count exceeds table seats")

	// ErrNoSlotsAvailable возвращается, когда на дату не осталось ни одного слота
	ErrNoSlotsAvailable = errors.New("create_booking: no slots available for this date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrConflictWarning возвращается, когда следующее бронирование стола начинается вскоре после слота
	ErrConflictWarning = errors.New("create_booking: table is booked soon after the slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictWarning мягкое предупреждение: бронирование возможно после явного подтверждения гостем
type ConflictWarning struct {
	NextBookingAt time.Time
}

func (w *ConflictWarning) Error() string {
	return fmt.Sprintf("%v: next booking at %s", ErrConflictWarning, w.NextBookingAt.Format(domain.DateTimeFormat))
}

// Is позволяет сравнивать предупреждение с ErrConflictWarning через errors.Is
func (w *ConflictWarning) Is(target error) bool {
	return target == ErrConflictWarning
}
