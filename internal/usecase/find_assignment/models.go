package find_assignment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на подбор столов
type Request struct {
	RestaurantID    uuid.UUID // ID ресторана
	StartTime       time.Time // Начало запрашиваемого окна
	DurationMinutes int       // Длительность посадки в минутах
	PartySize       int       // Количество гостей

	// Если указано, выигравший набор столов атомарно фиксируется за этим
	// бронированием (в сериализуемой транзакции, с повторной проверкой
	// конфликтов). Без него подбор — чистое чтение
	ReservationID *uuid.UUID
	ActorID       int64 // Кто выполняет назначение (для журнала)
}

// Response модель ответа с подобранным набором столов
type Response struct {
	TableIDs            []uuid.UUID // Назначенные столы (один или пара)
	RequiresCombination bool        // Выбрана комбинация, а не одиночный стол
	Committed           bool        // Назначение зафиксировано за бронированием
}
