package walk_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/bookings"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidTableID      = "некорректный ID стола"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidRequest      = "некорректные данные гостей"
	msgRestaurantNotFound  = "ресторан не найден"
	msgTableNotFound       = "стол не найден"
	msgForbidden           = "доступ запрещен"
	msgTooManyGuests       = "количество гостей превышает вместимость стола"
	msgTableBusy           = "стол занят или скоро будет занят"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/tables/{tableId}/walk-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req WalkInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.SeatWalkIn(r.Context(), req.ToServiceRequest(userID, restaurantID, tableID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, bookings.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, bookings.ErrTableNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Table not found: restaurant_id=%d, table_id=%d",
				restaurantID, tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrTooManyGuests):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Too many guests: table_id=%d, guests=%d",
				tableID, req.GuestCount)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, bookings.ErrTableBusy):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/walk-in - Table busy: table_id=%d, error=%v", tableID, err)
			handlers.RespondConflict(w, msgTableBusy)

		default:
			h.logger.Error("POST /restaurants/{id}/tables/{id}/walk-in - Failed to seat walk-in: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/tables/{id}/walk-in - Walk-in seated: table_id=%d, booking_id=%d",
		tableID, booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
