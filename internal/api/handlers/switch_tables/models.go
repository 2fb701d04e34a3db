package switch_tables

import (
	"github.com/google/uuid"

	switchTables "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/switch_tables"
)

// SwitchTablesRequest HTTP запрос на пересадку
type SwitchTablesRequest struct {
	TableIDs []uuid.UUID `json:"tableIds"`
	Reason   *string     `json:"reason,omitempty"`
}

// SwitchTablesResponse HTTP ответ на пересадку
type SwitchTablesResponse struct {
	ReservationID    uuid.UUID   `json:"reservationId"`
	PreviousTableIDs []uuid.UUID `json:"previousTableIds"`
	NewTableIDs      []uuid.UUID `json:"newTableIds"`
	CapacityWarning  *string     `json:"capacityWarning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SwitchTablesRequest) ToUseCaseRequest(reservationID uuid.UUID, actorID int64) *switchTables.Request {
	return &switchTables.Request{
		ReservationID: reservationID,
		NewTableIDs:   r.TableIDs,
		ActorID:       actorID,
		Reason:        r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *switchTables.Response) *SwitchTablesResponse {
	out := &SwitchTablesResponse{
		ReservationID:    resp.ReservationID,
		PreviousTableIDs: resp.PreviousTableIDs,
		NewTableIDs:      resp.NewTableIDs,
		CapacityWarning:  resp.CapacityWarning,
	}
	if out.PreviousTableIDs == nil {
		out.PreviousTableIDs = []uuid.UUID{}
	}
	return out
}
