package validate_capacity

import "errors"

var (
	// ErrTableNotFound возвращается, когда один из столов не найден,
	// неактивен или принадлежит другому ресторану
	ErrTableNotFound = errors.New("validate_capacity: table not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_capacity: internal error")
)
