package update_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	// UpdateStatus обновляет статус; stampCheckIn проставляет checked_in_at,
	// если он ещё не установлен
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DiningStatus, stampCheckIn bool) error
	// Cancel переводит бронирование в статус отмены с причиной и меткой времени
	Cancel(ctx context.Context, id uuid.UUID, status domain.DiningStatus, reason *string) error
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
