package update_status

import (
	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// Request модель запроса на смену статуса посадки
type Request struct {
	ReservationID uuid.UUID           // ID бронирования
	NewStatus     domain.DiningStatus // Целевой статус
	ActorID       int64               // Кто выполняет переход (для журнала)
	Reason        *string             // Причина (обязательна для отмен)
}

// Response модель ответа на смену статуса
type Response struct {
	ReservationID  uuid.UUID           // ID бронирования
	PreviousStatus domain.DiningStatus // Статус до перехода
	NewStatus      domain.DiningStatus // Статус после перехода
	NoChange       bool                // Целевой статус совпал с текущим, запись не выполнялась
	Progress       int                 // Прогресс посадки после перехода (0-100)
}
