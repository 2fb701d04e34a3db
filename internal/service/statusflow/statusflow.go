package statusflow

import (
	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// TransitionOption описывает один допустимый переход из текущего статуса
// RequiresConfirmation — свойство самого перехода, а не вызывающей стороны:
// любой клиент (UI, API, batch) обязан запросить подтверждение
type TransitionOption struct {
	To                   domain.DiningStatus
	Label                string
	RequiresConfirmation bool
}

// statusLabels человекочитаемые названия статусов
// Полная таблица: компилятор ловит пропущенный статус в тестах через IsValid
var statusLabels = map[domain.DiningStatus]string{
	domain.StatusPending:               "ожидает подтверждения",
	domain.StatusConfirmed:             "подтверждено",
	domain.StatusArrived:               "гость пришёл",
	domain.StatusSeated:                "за столом",
	domain.StatusOrdered:               "заказ принят",
	domain.StatusAppetizers:            "закуски",
	domain.StatusMainCourse:            "основное блюдо",
	domain.StatusDessert:               "десерт",
	domain.StatusPayment:               "оплата",
	domain.StatusCompleted:             "завершено",
	domain.StatusDeclinedByRestaurant:  "отклонено рестораном",
	domain.StatusCancelledByUser:       "отменено гостем",
	domain.StatusCancelledByRestaurant: "отменено рестораном",
	domain.StatusNoShow:                "гость не пришёл",
}

// progressByStatus фиксированное отображение статуса в процент прогресса
// Строго возрастает вдоль happy path; терминальные ветки дают 0
var progressByStatus = map[domain.DiningStatus]int{
	domain.StatusPending:    0,
	domain.StatusConfirmed:  10,
	domain.StatusArrived:    20,
	domain.StatusSeated:     30,
	domain.StatusOrdered:    45,
	domain.StatusAppetizers: 55,
	domain.StatusMainCourse: 70,
	domain.StatusDessert:    80,
	domain.StatusPayment:    90,
	domain.StatusCompleted:  100,
}

// confirmationRequired переходы, требующие явного подтверждения оператора
var confirmationRequired = map[domain.DiningStatus]bool{
	domain.StatusNoShow:                true,
	domain.StatusCancelledByUser:       true,
	domain.StatusCancelledByRestaurant: true,
}

// Label возвращает человекочитаемое название статуса
func Label(status domain.DiningStatus) string {
	return statusLabels[status]
}

// RequiresConfirmation сообщает, требует ли переход в статус явного подтверждения
func RequiresConfirmation(target domain.DiningStatus) bool {
	return confirmationRequired[target]
}

// NextStep возвращает следующий шаг happy path для текущего статуса
// и false, если следующего шага нет (терминал или конец последовательности)
func NextStep(current domain.DiningStatus) (domain.DiningStatus, bool) {
	idx, ok := current.HappyPathIndex()
	if !ok || idx == len(domain.HappyPath)-1 {
		return "", false
	}
	return domain.HappyPath[idx+1], true
}

// branchTargets возвращает терминальные ветки, доступные из текущего статуса:
// - отклонение рестораном: только из pending
// - no-show: только из pending и confirmed (дальше гость уже пришёл)
// - отмены: из любого нетерминального статуса, кроме completed
func branchTargets(current domain.DiningStatus) []domain.DiningStatus {
	if current.IsTerminal() {
		return nil
	}

	targets := make([]domain.DiningStatus, 0, 4)

	if current == domain.StatusPending {
		targets = append(targets, domain.StatusDeclinedByRestaurant)
	}
	if current == domain.StatusPending || current == domain.StatusConfirmed {
		targets = append(targets, domain.StatusNoShow)
	}
	targets = append(targets, domain.StatusCancelledByUser, domain.StatusCancelledByRestaurant)

	return targets
}

// ValidTransitions возвращает переходы "следующего шага" из текущего статуса:
// один шаг вперёд по happy path плюс контекстные терминальные ветки
// Для терминальных статусов переходов нет
func ValidTransitions(current domain.DiningStatus) []TransitionOption {
	if current.IsTerminal() {
		return []TransitionOption{}
	}

	options := make([]TransitionOption, 0, 5)

	if next, ok := NextStep(current); ok {
		options = append(options, newOption(next))
	}
	for _, target := range branchTargets(current) {
		options = append(options, newOption(target))
	}

	return options
}

// AllAvailableStatuses возвращает полный набор статусов, достижимых из
// текущего прямым переходом: любой статус happy path строго впереди текущего
// (откаты назад запрещены) плюс терминальные ветки
// Используется для ручной корректировки персоналом
func AllAvailableStatuses(current domain.DiningStatus) []TransitionOption {
	if current.IsTerminal() {
		return []TransitionOption{}
	}

	options := make([]TransitionOption, 0, len(domain.HappyPath)+4)

	if idx, ok := current.HappyPathIndex(); ok {
		for _, status := range domain.HappyPath[idx+1:] {
			options = append(options, newOption(status))
		}
	}
	for _, target := range branchTargets(current) {
		options = append(options, newOption(target))
	}

	return options
}

// CanTransition проверяет, достижим ли target из current прямым переходом
func CanTransition(current, target domain.DiningStatus) bool {
	for _, opt := range AllAvailableStatuses(current) {
		if opt.To == target {
			return true
		}
	}
	return false
}

// Progress возвращает прогресс посадки в процентах (0-100)
// Терминальные ветки вне happy path прогрессом не являются и дают 0
func Progress(status domain.DiningStatus) int {
	return progressByStatus[status]
}

// EstimateRemainingMinutes оценивает оставшееся время посадки:
// turnTime * (1 - progress/100), не меньше нуля
func EstimateRemainingMinutes(status domain.DiningStatus, turnTimeMinutes int) int {
	remaining := turnTimeMinutes * (100 - Progress(status)) / 100
	if remaining < 0 {
		return 0
	}
	return remaining
}

func newOption(target domain.DiningStatus) TransitionOption {
	return TransitionOption{
		To:                   target,
		Label:                Label(target),
		RequiresConfirmation: RequiresConfirmation(target),
	}
}
