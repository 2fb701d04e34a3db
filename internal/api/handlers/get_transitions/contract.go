package get_transitions

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/reservations/models"
)

type ReservationService interface {
	GetTransitions(ctx context.Context, id uuid.UUID) (*models.TransitionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
