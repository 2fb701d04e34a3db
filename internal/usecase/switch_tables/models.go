package switch_tables

import (
	"github.com/google/uuid"
)

// Request модель запроса на пересадку за другие столы
type Request struct {
	ReservationID uuid.UUID   // ID бронирования
	NewTableIDs   []uuid.UUID // Целевой набор столов
	ActorID       int64       // Кто выполняет пересадку (для журнала)
	Reason        *string     // Причина пересадки (опционально)
}

// Response модель ответа на пересадку
type Response struct {
	ReservationID    uuid.UUID   // ID бронирования
	PreviousTableIDs []uuid.UUID // Столы до пересадки
	NewTableIDs      []uuid.UUID // Столы после пересадки
	// Вместимость нового набора меньше размера компании — пересадка выполнена,
	// но персонал предупреждён
	CapacityWarning *string
}
