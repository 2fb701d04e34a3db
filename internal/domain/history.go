package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistoryEntry is an append-only audit record of a committed change.
// PreviousStatus == NewStatus означает смену столов без смены статуса
type StatusHistoryEntry struct {
	ID             int64
	ReservationID  uuid.UUID
	PreviousStatus *DiningStatus // nil для самой первой записи бронирования
	NewStatus      DiningStatus
	ActorID        int64
	Reason         *string
	CreatedAt      time.Time
}

// IsTableSwitch returns true for audit entries written by a table re-assignment
func (e *StatusHistoryEntry) IsTableSwitch() bool {
	return e.PreviousStatus != nil && *e.PreviousStatus == e.NewStatus
}
