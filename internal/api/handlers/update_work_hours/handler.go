package update_work_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidWorkHours    = "некорректные рабочие часы, ожидается HH:MM"
	msgInvalidRequest      = "некорректные параметры запроса"
	msgNotFound            = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/restaurants/{restaurantId}/work-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/work-hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /restaurants/{id}/work-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateWorkHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/work-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	restaurant, err := h.service.UpdateWorkHours(r.Context(), restaurantID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/work-hours - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("PUT /restaurants/{id}/work-hours - Access denied: restaurant_id=%d, user_id=%d", restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, restaurants.ErrInvalidWorkHours):
			h.logger.Warn("PUT /restaurants/{id}/work-hours - Invalid work hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWorkHours)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("PUT /restaurants/{id}/work-hours - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PUT /restaurants/{id}/work-hours - Failed to update work hours: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/work-hours - Work hours updated: restaurant_id=%d, hours=%s-%s",
		restaurantID, restaurant.WorkStarts, restaurant.WorkEnds)
	handlers.RespondJSON(w, http.StatusOK, restaurant)
}
