package validate_capacity

import (
	"github.com/google/uuid"

	validateCapacity "github.com/qwerty-development/rbs-restaurant-sub003/internal/usecase/validate_capacity"
)

// ValidateCapacityRequest HTTP запрос на проверку вместимости
type ValidateCapacityRequest struct {
	TableIDs  []uuid.UUID `json:"tableIds"`
	PartySize int         `json:"partySize"`
}

// ValidateCapacityResponse HTTP ответ проверки вместимости
type ValidateCapacityResponse struct {
	Valid         bool   `json:"valid"`
	TotalCapacity int    `json:"totalCapacity"`
	Shortfall     int    `json:"shortfall"`
	Message       string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateCapacityRequest) ToUseCaseRequest(restaurantID uuid.UUID) *validateCapacity.Request {
	return &validateCapacity.Request{
		RestaurantID: restaurantID,
		TableIDs:     r.TableIDs,
		PartySize:    r.PartySize,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *validateCapacity.Response) *ValidateCapacityResponse {
	return &ValidateCapacityResponse{
		Valid:         resp.Valid,
		TotalCapacity: resp.TotalCapacity,
		Shortfall:     resp.Shortfall,
		Message:       resp.Message,
	}
}
