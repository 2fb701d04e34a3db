package find_assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	// ListActive получает активные столы ресторана (отсортированы по вместимости и ID)
	ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error)
	// ListActiveCombinations получает активные комбинации (отсортированы по вместимости и ID)
	ListActiveCombinations(ctx context.Context, restaurantID uuid.UUID) ([]*domain.TableCombination, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListOccupying(ctx context.Context, restaurantID uuid.UUID, tableIDs []uuid.UUID) ([]*domain.Reservation, error)
	ReplaceTables(ctx context.Context, id uuid.UUID, tableIDs []uuid.UUID) error
}

// HistoryRepository интерфейс журнала изменений
type HistoryRepository interface {
	Append(ctx context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
