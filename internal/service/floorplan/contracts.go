package floorplan

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Table, error)
	ListActiveCombinations(ctx context.Context, restaurantID uuid.UUID) ([]*domain.TableCombination, error)
	GetCombinationByPair(ctx context.Context, restaurantID, tableA, tableB uuid.UUID) (*domain.TableCombination, error)
	CreateCombination(ctx context.Context, combo *domain.TableCombination) (*domain.TableCombination, error)
	RetireCombination(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
