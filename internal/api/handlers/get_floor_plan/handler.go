package get_floor_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	getFloorPlan "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_floor_plan"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase GetFloorPlanUseCase
	logger  Logger
}

func NewHandler(useCase GetFloorPlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/floor-plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil || restaurantID <= 0 {
		h.logger.Warn("GET /restaurants/{id}/floor-plan - Invalid restaurant ID: %s", mux.Vars(r)["restaurantId"])
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFloorPlan.Request{RestaurantID: restaurantID})
	if err != nil {
		switch {
		case errors.Is(err, getFloorPlan.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/floor-plan - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getFloorPlan.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/floor-plan - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)

		default:
			h.logger.Error("GET /restaurants/{id}/floor-plan - Failed to build floor plan: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/floor-plan - Floor plan built: restaurant_id=%d, tables=%d",
		restaurantID, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
