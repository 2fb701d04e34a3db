package update_status

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_status: reservation not found")

	// ErrInvalidTransition возвращается при попытке недопустимого перехода:
	// откат назад по happy path, выход из терминального статуса или ветка,
	// недоступная из текущего статуса
	ErrInvalidTransition = errors.New("update_status: transition is not allowed from the current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_status: internal error")
)
