package validate_capacity

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers"
	validateCapacity "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/validate_capacity"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgTableNotFound       = "стол не найден"
)

type Handler struct {
	useCase ValidateCapacityUseCase
	logger  Logger
}

func NewHandler(useCase ValidateCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/capacity-check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/capacity-check - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req ValidateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/capacity-check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(restaurantID))
	if err != nil {
		switch {
		case errors.Is(err, validateCapacity.ErrTableNotFound):
			h.logger.Warn("POST /restaurants/{id}/capacity-check - Table not found: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, validateCapacity.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/capacity-check - Invalid input: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /restaurants/{id}/capacity-check - Failed to validate capacity: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/capacity-check - Validated: restaurant_id=%s, valid=%t, total=%d",
		restaurantID, result.Valid, result.TotalCapacity)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
