package create_combination

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgTableNotFound       = "стол не найден"
	msgCombinationExists   = "комбинация для этой пары столов уже существует"
)

type Handler struct {
	service FloorPlanService
	logger  Logger
}

func NewHandler(service FloorPlanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/combinations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/combinations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CreateCombinationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/combinations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	combo, err := h.service.CreateCombination(r.Context(), req.ToServiceRequest(restaurantID))
	if err != nil {
		switch {
		case errors.Is(err, floorplan.ErrTableNotFound):
			h.logger.Warn("POST /restaurants/{id}/combinations - Table not found: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, floorplan.ErrCombinationExists):
			h.logger.Warn("POST /restaurants/{id}/combinations - Combination exists: restaurant_id=%s, pair=%s+%s",
				restaurantID, req.PrimaryTableID, req.SecondaryTableID)
			handlers.RespondConflict(w, msgCombinationExists)

		case errors.Is(err, floorplan.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/combinations - Invalid input: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /restaurants/{id}/combinations - Failed to create combination: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/combinations - Combination created: restaurant_id=%s, combination_id=%s",
		restaurantID, combo.ID)
	handlers.RespondJSON(w, http.StatusCreated, combo)
}
