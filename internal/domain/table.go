package domain

import (
	"time"

	"github.com/google/uuid"
)

// TableShape represents the physical shape of a table
type TableShape string

const (
	ShapeRectangle TableShape = "rectangle"
	ShapeCircle    TableShape = "circle"
	ShapeSquare    TableShape = "square"
)

// Table represents a physical table in the restaurant floor plan
// Управляется менеджментом зала; движок читает её как справочные данные
type Table struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Number       string // Человекочитаемый номер стола ("T1", "12")
	Capacity     int    // Номинальное количество мест
	MinCapacity  int    // Минимальная посадка (0 = без ограничения)
	MaxCapacity  int    // Максимальная посадка (0 = равна Capacity)
	Shape        TableShape

	// Список столов, с которыми этот стол физически совместим
	// Симметричное отношение, собирается из table_combinations с обеих сторон
	CombinableWith []uuid.UUID

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveMaxCapacity возвращает реальную максимальную посадку стола
func (t *Table) EffectiveMaxCapacity() int {
	if t.MaxCapacity > 0 {
		return t.MaxCapacity
	}
	return t.Capacity
}

// FitsParty returns true if the table alone can seat the given party
func (t *Table) FitsParty(partySize int) bool {
	return t.EffectiveMaxCapacity() >= partySize
}

// IsCombinableWith returns true if the table may be physically joined with other
func (t *Table) IsCombinableWith(other uuid.UUID) bool {
	for _, id := range t.CombinableWith {
		if id == other {
			return true
		}
	}
	return false
}

// TableCombination represents a legal pairing of two tables treated as one
// larger resource. Пара неупорядоченная: отношение обязано быть видно и со
// стороны primary, и со стороны secondary. Деактивируется мягко (is_active),
// потому что исторические бронирования могут ссылаться на выведенную пару
type TableCombination struct {
	ID               uuid.UUID
	RestaurantID     uuid.UUID
	PrimaryTableID   uuid.UUID
	SecondaryTableID uuid.UUID
	CombinedCapacity int
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableIDs возвращает оба стола пары
func (c *TableCombination) TableIDs() []uuid.UUID {
	return []uuid.UUID{c.PrimaryTableID, c.SecondaryTableID}
}

// Involves returns true if the combination uses the given table
func (c *TableCombination) Involves(tableID uuid.UUID) bool {
	return c.PrimaryTableID == tableID || c.SecondaryTableID == tableID
}

// FitsParty returns true if the combined capacity seats the given party
func (c *TableCombination) FitsParty(partySize int) bool {
	return c.CombinedCapacity >= partySize
}
