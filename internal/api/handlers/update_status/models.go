package update_status

import (
	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	updateStatus "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/update_status"
)

// UpdateStatusRequest HTTP запрос на смену статуса посадки
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// UpdateStatusResponse HTTP ответ на смену статуса
type UpdateStatusResponse struct {
	ReservationID  uuid.UUID `json:"reservationId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	NoChange       bool      `json:"noChange"`
	Progress       int       `json:"progress"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(reservationID uuid.UUID, actorID int64) *updateStatus.Request {
	return &updateStatus.Request{
		ReservationID: reservationID,
		NewStatus:     domain.DiningStatus(r.Status),
		ActorID:       actorID,
		Reason:        r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ReservationID:  resp.ReservationID,
		PreviousStatus: string(resp.PreviousStatus),
		NewStatus:      string(resp.NewStatus),
		NoChange:       resp.NoChange,
		Progress:       resp.Progress,
	}
}
