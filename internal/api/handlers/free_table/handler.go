package free_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-TableBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidTableID      = "некорректный ID стола"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgRestaurantNotFound  = "ресторан не найден"
	msgTableNotFound       = "стол не найден"
	msgForbidden           = "доступ запрещен"
	msgNothingToFree       = "за столом нет гостей"
	msgInvalidTransition   = "бронирование уже изменено, обновите схему зала"
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

// Handle POST /api/v1/restaurants/{restaurantId}/tables/{tableId}/free
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.FreeTable(r.Context(), &models.TableActionRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
		TableID:      tableID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, bookings.ErrTableNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Table not found: restaurant_id=%d, table_id=%d",
				restaurantID, tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Access denied: restaurant_id=%d, user_id=%d",
				restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrNothingToFree):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Nothing to free: table_id=%d", tableID)
			handlers.RespondConflict(w, msgNothingToFree)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("POST /restaurants/{id}/tables/{id}/free - Booking changed concurrently: table_id=%d", tableID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /restaurants/{id}/tables/{id}/free - Failed to free table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/tables/{id}/free - Table freed: table_id=%d, booking_id=%d", tableID, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
