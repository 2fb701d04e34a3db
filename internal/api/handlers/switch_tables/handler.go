package switch_tables

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/handlers"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/api/middleware"
	switchTables "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/switch_tables"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgReservationNotFound  = "бронирование не найдено"
	msgTableNotFound        = "стол не найден"
	msgTableConflict        = "один из столов занят пересекающимся бронированием"
)

type Handler struct {
	useCase SwitchTablesUseCase
	logger  Logger
}

func NewHandler(useCase SwitchTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/tables - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/tables - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SwitchTablesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, userID))
	if err != nil {
		switch {
		case errors.Is(err, switchTables.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/tables - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, switchTables.ErrTableNotFound):
			h.logger.Warn("PATCH /reservations/{id}/tables - Table not found: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, switchTables.ErrTableConflict):
			h.logger.Warn("PATCH /reservations/{id}/tables - Table conflict: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondConflict(w, msgTableConflict)

		case errors.Is(err, switchTables.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/tables - Invalid input: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /reservations/{id}/tables - Failed to switch tables: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/tables - Tables switched: reservation_id=%s, tables=%d, user_id=%d",
		reservationID, len(result.NewTableIDs), userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
