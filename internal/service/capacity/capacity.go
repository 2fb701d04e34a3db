package capacity

import (
	"fmt"
	"strings"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// Result результат проверки вместимости набора столов
// Проверка информационная: вызывающая сторона вправе продолжить несмотря на
// предупреждение, валидатор только считает факт и формирует сообщение
type Result struct {
	Valid         bool
	TotalCapacity int
	Shortfall     int
	Message       string
}

// Validate проверяет, что суммарная максимальная вместимость столов
// покрывает размер компании гостей
func Validate(tables []*domain.Table, partySize int) Result {
	total := 0
	for _, t := range tables {
		total += t.EffectiveMaxCapacity()
	}

	if total >= partySize {
		return Result{Valid: true, TotalCapacity: total}
	}

	shortfall := partySize - total

	parts := make([]string, 0, len(tables))
	for _, t := range tables {
		parts = append(parts, fmt.Sprintf("%s (%d мест)", t.Number, t.EffectiveMaxCapacity()))
	}

	return Result{
		Valid:         false,
		TotalCapacity: total,
		Shortfall:     shortfall,
		Message: fmt.Sprintf("недостаточно мест для %d гостей: не хватает %d, выбраны столы %s",
			partySize, shortfall, strings.Join(parts, ", ")),
	}
}
