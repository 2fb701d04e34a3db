package validate_capacity

import (
	"github.com/google/uuid"
)

// Request модель запроса на проверку вместимости набора столов
type Request struct {
	RestaurantID uuid.UUID   // ID ресторана
	TableIDs     []uuid.UUID // Проверяемый набор столов
	PartySize    int         // Количество гостей
}

// Response модель ответа проверки вместимости
type Response struct {
	Valid         bool   // Суммарная вместимость покрывает компанию
	TotalCapacity int    // Суммарная максимальная вместимость набора
	Shortfall     int    // Сколько мест не хватает (0, если хватает)
	Message       string // Человекочитаемое пояснение при нехватке
}
