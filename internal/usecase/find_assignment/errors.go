package find_assignment

import "errors"

var (
	// ErrNoCandidate возвращается, когда ни один стол и ни одна комбинация
	// не подходит по вместимости и доступности
	// Ожидаемый бизнес-результат, а не сбой: вызывающая сторона предлагает
	// другое время или лист ожидания
	ErrNoCandidate = errors.New("find_assignment: no table or combination satisfies the request")

	// ErrReservationNotFound возвращается, когда бронирование для фиксации
	// назначения не найдено
	ErrReservationNotFound = errors.New("find_assignment: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_assignment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_assignment: internal error")
)
