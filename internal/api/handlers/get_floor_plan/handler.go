package get_floor_plan

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
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

// Handle GET /api/v1/restaurants/{restaurantId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	plan, err := h.service.GetFloorPlan(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/tables - Failed to get floor plan: restaurant_id=%s, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/tables - Floor plan retrieved: restaurant_id=%s, tables=%d",
		restaurantID, len(plan.Tables))
	handlers.RespondJSON(w, http.StatusOK, plan)
}
