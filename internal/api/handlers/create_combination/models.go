package create_combination

import (
	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/service/floorplan/models"
)

// CreateCombinationRequest HTTP запрос на создание комбинации столов
type CreateCombinationRequest struct {
	PrimaryTableID   uuid.UUID `json:"primaryTableId"`
	SecondaryTableID uuid.UUID `json:"secondaryTableId"`
	CombinedCapacity *int      `json:"combinedCapacity,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCombinationRequest) ToServiceRequest(restaurantID uuid.UUID) *models.CreateCombinationRequest {
	return &models.CreateCombinationRequest{
		RestaurantID:     restaurantID,
		PrimaryTableID:   r.PrimaryTableID,
		SecondaryTableID: r.SecondaryTableID,
		CombinedCapacity: r.CombinedCapacity,
	}
}
