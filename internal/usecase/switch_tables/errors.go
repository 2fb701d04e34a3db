package switch_tables

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("switch_tables: reservation not found")

	// ErrTableNotFound возвращается, когда один из целевых столов не найден
	// или неактивен
	ErrTableNotFound = errors.New("switch_tables: table not found")

	// ErrTableConflict возвращается, когда хотя бы один целевой стол занят
	// пересекающимся бронированием. Пересадка атомарна: всё или ничего
	ErrTableConflict = errors.New("switch_tables: target table is occupied by an overlapping reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("switch_tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("switch_tables: internal error")
)
