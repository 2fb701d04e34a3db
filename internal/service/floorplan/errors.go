package floorplan

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден или неактивен
	ErrTableNotFound = errors.New("floorplan: table not found")

	// ErrCombinationNotFound возвращается, когда комбинация не найдена
	ErrCombinationNotFound = errors.New("floorplan: combination not found")

	// ErrCombinationExists возвращается при попытке создать комбинацию для
	// пары, у которой уже есть активная комбинация (в любой ориентации)
	ErrCombinationExists = errors.New("floorplan: combination for this pair already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("floorplan: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("floorplan: internal error")
)
