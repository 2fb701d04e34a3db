package find_assignment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/middleware"
	findAssignment "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/find_assignment"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgNoCandidate         = "нет свободных столов подходящей вместимости"
	msgReservationNotFound = "бронирование не найдено"
)

type Handler struct {
	useCase FindAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase FindAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/assignments - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /restaurants/{id}/assignments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req FindAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(restaurantID, userID))
	if err != nil {
		switch {
		case errors.Is(err, findAssignment.ErrNoCandidate):
			h.logger.Warn("POST /restaurants/{id}/assignments - No candidate: restaurant_id=%s, party=%d",
				restaurantID, req.PartySize)
			handlers.RespondConflict(w, msgNoCandidate)

		case errors.Is(err, findAssignment.ErrReservationNotFound):
			h.logger.Warn("POST /restaurants/{id}/assignments - Reservation not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, findAssignment.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/assignments - Invalid input: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /restaurants/{id}/assignments - Failed to find assignment: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/assignments - Assignment found: restaurant_id=%s, tables=%d, committed=%t",
		restaurantID, len(result.TableIDs), result.Committed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
