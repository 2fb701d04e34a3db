package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/dbmetrics"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/psqlbuilder"
)

// Repository репозиторий журнала изменений статусов
// Журнал append-only: записи никогда не изменяются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
// Вызывается внутри той же транзакции, что и смена статуса/столов, поэтому
// порядок записей совпадает с порядком зафиксированных переходов
func (r *Repository) Append(ctx context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_status_history").
		Columns(
			"reservation_id",
			"previous_status",
			"new_status",
			"actor_id",
			"reason",
		).
		Values(
			entry.ReservationID,
			entry.PreviousStatus,
			entry.NewStatus,
			entry.ActorID,
			entry.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// ListByReservation получает журнал бронирования в порядке фиксации переходов
func (r *Repository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*domain.StatusHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"previous_status",
		"new_status",
		"actor_id",
		"reason",
		"created_at",
	).
		From("reservation_status_history").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.StatusHistoryEntry, 0)
	for rows.Next() {
		var entry domain.StatusHistoryEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.ReservationID,
			&entry.PreviousStatus,
			&entry.NewStatus,
			&entry.ActorID,
			&entry.Reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
