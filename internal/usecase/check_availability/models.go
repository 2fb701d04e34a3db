package check_availability

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на проверку доступности столов
type Request struct {
	RestaurantID    uuid.UUID   // ID ресторана
	TableIDs        []uuid.UUID // Проверяемые столы
	StartTime       time.Time   // Начало запрашиваемого окна
	DurationMinutes int         // Длительность окна в минутах

	// Бронирование, которое надо игнорировать при проверке
	// Используется при редактировании: "останусь ли я доступен, если оставлю свой слот"
	ExcludeReservationID *uuid.UUID
}

// Response модель ответа с результатом проверки
type Response struct {
	Available bool       // Свободны ли все запрошенные столы в окне
	Conflicts []Conflict // Пересекающиеся бронирования (пусто при Available)
}

// Conflict описывает одно пересекающееся бронирование
type Conflict struct {
	ReservationID uuid.UUID // ID конфликтующего бронирования
	TableID       uuid.UUID // Стол, на котором найден конфликт
	GuestName     string    // Имя гостя для сообщения оператору
	StartTime     time.Time // Начало конфликтующего бронирования
	EndTime       time.Time // Конец конфликтующего бронирования
}
