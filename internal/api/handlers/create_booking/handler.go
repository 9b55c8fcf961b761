package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TableBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidRequest     = "некорректные данные бронирования"
	msgRestaurantNotFound = "ресторан не найден"
	msgTableNotFound      = "стол не найден"
	msgTooManyGuests      = "количество гостей превышает вместимость стола"
	msgNoSlotsAvailable   = "на выбранную дату нет свободного времени"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgConflictWarning    = "вскоре после выбранного времени стол забронирован, подтвердите бронирование"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var warning *createBooking.ConflictWarning

		switch {
		case errors.As(err, &warning):
			h.logger.Info("POST /bookings - Conflict warning: table_id=%d, next_booking_at=%s",
				req.TableID, warning.NextBookingAt)
			handlers.RespondConflictWarning(w, msgConflictWarning, warning.NextBookingAt)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: table_id=%d, date=%s, time=%s",
				req.TableID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrNoSlotsAvailable):
			h.logger.Warn("POST /bookings - No slots available: table_id=%d, date=%s", req.TableID, req.Date)
			handlers.RespondConflict(w, msgNoSlotsAvailable)

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrTableNotFound):
			h.logger.Warn("POST /bookings - Table not found: restaurant_id=%d, table_id=%d", req.RestaurantID, req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: table_id=%d, guests=%d", req.TableID, req.GuestCount)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: restaurant_id=%d, table_id=%d, error=%v",
				req.RestaurantID, req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, restaurant_id=%d, table_id=%d",
		result.ID, result.RestaurantID, result.TableID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
