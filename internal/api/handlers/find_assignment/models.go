package find_assignment

import (
	"time"

	"github.com/google/uuid"

	findAssignment "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/find_assignment"
)

// FindAssignmentRequest HTTP запрос на подбор столов
type FindAssignmentRequest struct {
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	PartySize       int       `json:"partySize"`
	// Если указано, подобранный набор фиксируется за бронированием
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
}

// FindAssignmentResponse HTTP ответ с подобранным набором столов
type FindAssignmentResponse struct {
	TableIDs            []uuid.UUID `json:"tableIds"`
	RequiresCombination bool        `json:"requiresCombination"`
	Committed           bool        `json:"committed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FindAssignmentRequest) ToUseCaseRequest(restaurantID uuid.UUID, actorID int64) *findAssignment.Request {
	return &findAssignment.Request{
		RestaurantID:    restaurantID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		PartySize:       r.PartySize,
		ReservationID:   r.ReservationID,
		ActorID:         actorID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *findAssignment.Response) *FindAssignmentResponse {
	return &FindAssignmentResponse{
		TableIDs:            resp.TableIDs,
		RequiresCombination: resp.RequiresCombination,
		Committed:           resp.Committed,
	}
}
