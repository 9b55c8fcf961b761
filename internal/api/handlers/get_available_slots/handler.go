package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidTableID      = "некорректный ID стола"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRestaurantNotFound  = "ресторан не найден"
	msgTableNotFound       = "стол не найден"
	msgInvalidRequest      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/tables/{tableId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(restaurantID, tableID, dateStr)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getAvailableSlots.ErrTableNotFound):
			h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Table not found: restaurant_id=%d, table_id=%d",
				restaurantID, tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/tables/{id}/available-slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /restaurants/{id}/tables/{id}/available-slots - Failed to get slots: restaurant_id=%d, table_id=%d, error=%v",
				restaurantID, tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /restaurants/{id}/tables/{id}/available-slots - Slots retrieved successfully: restaurant_id=%d, table_id=%d, slots_count=%d",
		restaurantID, tableID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
