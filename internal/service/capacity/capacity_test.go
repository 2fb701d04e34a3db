package capacity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

func table(number string, capacity, maxCapacity int) *domain.Table {
	return &domain.Table{
		ID:          uuid.New(),
		Number:      number,
		Capacity:    capacity,
		MaxCapacity: maxCapacity,
		IsActive:    true,
	}
}

func TestValidate_ExactFitIsValid(t *testing.T) {
	tables := []*domain.Table{
		table("T1", 4, 0),
		table("T2", 2, 0),
	}

	result := Validate(tables, 6)

	assert.True(t, result.Valid)
	assert.Equal(t, 6, result.TotalCapacity)
	assert.Equal(t, 0, result.Shortfall)
	assert.Empty(t, result.Message)
}

func TestValidate_OneSeatShortIsInvalid(t *testing.T) {
	tables := []*domain.Table{
		table("T1", 4, 0),
		table("T2", 2, 0),
	}

	result := Validate(tables, 7)

	assert.False(t, result.Valid)
	assert.Equal(t, 6, result.TotalCapacity)
	assert.Equal(t, 1, result.Shortfall)
	assert.Contains(t, result.Message, "не хватает 1")
	assert.Contains(t, result.Message, "T1 (4 мест)")
	assert.Contains(t, result.Message, "T2 (2 мест)")
}

func TestValidate_UsesMaxCapacityWhenSet(t *testing.T) {
	// Номинально 4 места, но с приставным стулом — 5
	tables := []*domain.Table{table("T3", 4, 5)}

	result := Validate(tables, 5)

	assert.True(t, result.Valid)
	assert.Equal(t, 5, result.TotalCapacity)
}

func TestValidate_EmptySelection(t *testing.T) {
	result := Validate(nil, 2)

	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.TotalCapacity)
	assert.Equal(t, 2, result.Shortfall)
}
