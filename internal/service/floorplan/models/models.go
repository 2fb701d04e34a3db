package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// Request модели

// CreateCombinationRequest запрос на создание комбинации столов
type CreateCombinationRequest struct {
	RestaurantID     uuid.UUID `json:"restaurantId"`
	PrimaryTableID   uuid.UUID `json:"primaryTableId"`
	SecondaryTableID uuid.UUID `json:"secondaryTableId"`
	// Вместимость пары; по умолчанию — сумма максимальных вместимостей столов
	CombinedCapacity *int `json:"combinedCapacity,omitempty"`
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	Capacity    int       `json:"capacity"`
	MinCapacity int       `json:"minCapacity"`
	MaxCapacity int       `json:"maxCapacity"`
	Shape       string    `json:"shape"`
	// Столы, с которыми у этого стола есть активная комбинация
	CombinableWith []uuid.UUID `json:"combinableWith"`
}

// CombinationResponse ответ с данными комбинации
type CombinationResponse struct {
	ID               uuid.UUID `json:"id"`
	PrimaryTableID   uuid.UUID `json:"primaryTableId"`
	SecondaryTableID uuid.UUID `json:"secondaryTableId"`
	CombinedCapacity int       `json:"combinedCapacity"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FloorPlanResponse ответ с планом зала: активные столы и комбинации
type FloorPlanResponse struct {
	RestaurantID uuid.UUID             `json:"restaurantId"`
	Tables       []TableResponse       `json:"tables"`
	Combinations []CombinationResponse `json:"combinations"`
}

// Методы конвертации

// FromDomainTable конвертирует domain модель стола в DTO
// combinableWith — идентификаторы парных столов из активных комбинаций
func FromDomainTable(t *domain.Table, combinableWith []uuid.UUID) TableResponse {
	if combinableWith == nil {
		combinableWith = []uuid.UUID{}
	}
	return TableResponse{
		ID:             t.ID,
		Number:         t.Number,
		Capacity:       t.Capacity,
		MinCapacity:    t.MinCapacity,
		MaxCapacity:    t.EffectiveMaxCapacity(),
		Shape:          string(t.Shape),
		CombinableWith: combinableWith,
	}
}

// FromDomainCombination конвертирует domain модель комбинации в DTO
func FromDomainCombination(c *domain.TableCombination) CombinationResponse {
	return CombinationResponse{
		ID:               c.ID,
		PrimaryTableID:   c.PrimaryTableID,
		SecondaryTableID: c.SecondaryTableID,
		CombinedCapacity: c.CombinedCapacity,
		CreatedAt:        c.CreatedAt,
	}
}
