package domain

// DiningStatus represents the status of a reservation in the dining lifecycle
type DiningStatus string

const (
	// Основная последовательность ("happy path")
	StatusPending    DiningStatus = "pending"
	StatusConfirmed  DiningStatus = "confirmed"
	StatusArrived    DiningStatus = "arrived"
	StatusSeated     DiningStatus = "seated"
	StatusOrdered    DiningStatus = "ordered"
	StatusAppetizers DiningStatus = "appetizers"
	StatusMainCourse DiningStatus = "main_course"
	StatusDessert    DiningStatus = "dessert"
	StatusPayment    DiningStatus = "payment"
	StatusCompleted  DiningStatus = "completed"

	// Терминальные ветки
	StatusDeclinedByRestaurant  DiningStatus = "declined_by_restaurant"
	StatusCancelledByUser       DiningStatus = "cancelled_by_user"
	StatusCancelledByRestaurant DiningStatus = "cancelled_by_restaurant"
	StatusNoShow                DiningStatus = "no_show"
)

// HappyPath упорядоченная последовательность статусов от бронирования до завершения
// Порядок значим: переходы "следующий шаг" и прогресс считаются по этому слайсу
var HappyPath = []DiningStatus{
	StatusPending,
	StatusConfirmed,
	StatusArrived,
	StatusSeated,
	StatusOrdered,
	StatusAppetizers,
	StatusMainCourse,
	StatusDessert,
	StatusPayment,
	StatusCompleted,
}

// TerminalStatuses статусы, после которых бронирование больше не занимает столы
var TerminalStatuses = []DiningStatus{
	StatusCompleted,
	StatusDeclinedByRestaurant,
	StatusCancelledByUser,
	StatusCancelledByRestaurant,
	StatusNoShow,
}

// CancellationStatuses статусы отмены, для которых фиксируются причина и время отмены
var CancellationStatuses = []DiningStatus{
	StatusDeclinedByRestaurant,
	StatusCancelledByUser,
	StatusCancelledByRestaurant,
	StatusNoShow,
}

// IsTerminal returns true if the status ends the dining lifecycle
func (s DiningStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// IsOccupying returns true if a reservation in this status holds its tables
// against new overlapping bookings
func (s DiningStatus) IsOccupying() bool {
	return !s.IsTerminal()
}

// IsCancellation returns true for the cancel-family terminal statuses
func (s DiningStatus) IsCancellation() bool {
	for _, c := range CancellationStatuses {
		if s == c {
			return true
		}
	}
	return false
}

// IsValid returns true if the status is a known dining status
func (s DiningStatus) IsValid() bool {
	for _, h := range HappyPath {
		if s == h {
			return true
		}
	}
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// HappyPathIndex возвращает позицию статуса в основной последовательности
// и false, если статус в неё не входит
func (s DiningStatus) HappyPathIndex() (int, bool) {
	for i, h := range HappyPath {
		if s == h {
			return i, true
		}
	}
	return 0, false
}
