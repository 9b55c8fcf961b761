package get_restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TableBookingService/internal/service/restaurants"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgNotFound            = "ресторан не найден"
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

// Handle GET /api/v1/restaurants/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	restaurant, err := h.service.GetByID(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id} - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /restaurants/{id} - Failed to get restaurant: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id} - Restaurant retrieved successfully: restaurant_id=%d", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, restaurant)
}
