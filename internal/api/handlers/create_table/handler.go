package create_table

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
	msgInvalidRequest      = "некорректные данные стола"
	msgNotFound            = "ресторан не найден"
	msgForbidden           = "доступ запрещен"
	msgAlreadyExists       = "стол с таким номером уже существует"
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

// Handle POST /api/v1/restaurants/{restaurantId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/tables - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.CreateTable(r.Context(), restaurantID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, restaurants.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, restaurants.ErrAccessDenied):
			h.logger.Warn("POST /restaurants/{id}/tables - Access denied: restaurant_id=%d, user_id=%d", restaurantID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, restaurants.ErrTableAlreadyExists):
			h.logger.Warn("POST /restaurants/{id}/tables - Duplicate table: restaurant_id=%d, number=%s", restaurantID, req.Number)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, restaurants.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/tables - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /restaurants/{id}/tables - Failed to create table: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/tables - Table created successfully: restaurant_id=%d, table_id=%d",
		restaurantID, table.ID)
	handlers.RespondJSON(w, http.StatusCreated, table)
}
