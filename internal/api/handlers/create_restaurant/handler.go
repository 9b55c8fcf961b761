package create_restaurant

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidWorkHours   = "некорректные рабочие часы, ожидается HH:MM"
	msgInvalidRequest     = "некорректные данные ресторана"
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

// Handle POST /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	restaurant, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrInvalidWorkHours):
			h.logger.Warn("POST /restaurants - Invalid work hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWorkHours)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("POST /restaurants - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /restaurants - Failed to create restaurant: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants - Restaurant created successfully: restaurant_id=%d, user_id=%d",
		restaurant.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, restaurant)
}
