package retire_combination

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan"
)

const (
	msgInvalidCombinationID = "некорректный ID комбинации"
	msgNotFound             = "комбинация не найдена"
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

// Handle DELETE /api/v1/restaurants/{restaurantId}/combinations/{combinationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	combinationID, err := uuid.Parse(vars["combinationId"])
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/combinations/{id} - Invalid combination ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCombinationID)
		return
	}

	if err := h.service.RetireCombination(r.Context(), combinationID); err != nil {
		switch {
		case errors.Is(err, floorplan.ErrCombinationNotFound):
			h.logger.Warn("DELETE /restaurants/{id}/combinations/{id} - Combination not found: combination_id=%s",
				combinationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /restaurants/{id}/combinations/{id} - Failed to retire combination: combination_id=%s, error=%v",
				combinationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /restaurants/{id}/combinations/{id} - Combination retired: combination_id=%s", combinationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
