package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/statusflow"
)

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              uuid.UUID   `json:"id"`
	RestaurantID    uuid.UUID   `json:"restaurantId"`
	GuestName       string      `json:"guestName"`
	PartySize       int         `json:"partySize"`
	StartTime       time.Time   `json:"startTime"`
	EndTime         time.Time   `json:"endTime"`
	TurnTimeMinutes int         `json:"turnTimeMinutes"`
	Status          string      `json:"status"`
	StatusLabel     string      `json:"statusLabel"`
	Progress        int         `json:"progress"`
	TableIDs        []uuid.UUID `json:"tableIds"`

	CheckedInAt *time.Time `json:"checkedInAt,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusHistoryEntryResponse одна запись журнала изменений
type StatusHistoryEntryResponse struct {
	ID             int64     `json:"id"`
	PreviousStatus *string   `json:"previousStatus,omitempty"`
	NewStatus      string    `json:"newStatus"`
	IsTableSwitch  bool      `json:"isTableSwitch"`
	ActorID        int64     `json:"actorId"`
	Reason         *string   `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StatusHistoryResponse ответ с журналом бронирования
type StatusHistoryResponse struct {
	ReservationID uuid.UUID                    `json:"reservationId"`
	Entries       []StatusHistoryEntryResponse `json:"entries"`
}

// TransitionOptionResponse один допустимый переход
type TransitionOptionResponse struct {
	Status               string `json:"status"`
	Label                string `json:"label"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
}

// TransitionsResponse ответ с допустимыми переходами и прогрессом посадки
type TransitionsResponse struct {
	ReservationID    uuid.UUID `json:"reservationId"`
	CurrentStatus    string    `json:"currentStatus"`
	CurrentLabel     string    `json:"currentLabel"`
	Progress         int       `json:"progress"`
	RemainingMinutes int       `json:"remainingMinutes"`

	// Переходы следующего шага: один шаг вперёд плюс контекстные ветки
	NextTransitions []TransitionOptionResponse `json:"nextTransitions"`
	// Полный набор достижимых статусов для ручной корректировки
	AllStatuses []TransitionOptionResponse `json:"allStatuses"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		RestaurantID:       r.RestaurantID,
		GuestName:          r.GuestName,
		PartySize:          r.PartySize,
		StartTime:          r.StartTime,
		EndTime:            r.EndTime(),
		TurnTimeMinutes:    r.TurnTimeMinutes,
		Status:             string(r.Status),
		StatusLabel:        statusflow.Label(r.Status),
		Progress:           statusflow.Progress(r.Status),
		TableIDs:           r.TableIDs,
		CheckedInAt:        r.CheckedInAt,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.TableIDs == nil {
		resp.TableIDs = []uuid.UUID{}
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainHistory конвертирует журнал бронирования в DTO
func FromDomainHistory(reservationID uuid.UUID, entries []*domain.StatusHistoryEntry) *StatusHistoryResponse {
	resp := &StatusHistoryResponse{
		ReservationID: reservationID,
		Entries:       make([]StatusHistoryEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		item := StatusHistoryEntryResponse{
			ID:            entry.ID,
			NewStatus:     string(entry.NewStatus),
			IsTableSwitch: entry.IsTableSwitch(),
			ActorID:       entry.ActorID,
			Reason:        entry.Reason,
			CreatedAt:     entry.CreatedAt,
		}
		if entry.PreviousStatus != nil {
			prev := string(*entry.PreviousStatus)
			item.PreviousStatus = &prev
		}
		resp.Entries = append(resp.Entries, item)
	}

	return resp
}

// FromTransitionOptions конвертирует переходы statusflow в DTO
func FromTransitionOptions(options []statusflow.TransitionOption) []TransitionOptionResponse {
	resp := make([]TransitionOptionResponse, len(options))
	for i, opt := range options {
		resp[i] = TransitionOptionResponse{
			Status:               string(opt.To),
			Label:                opt.Label,
			RequiresConfirmation: opt.RequiresConfirmation,
		}
	}
	return resp
}
