package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/dbmetrics"
	"github.com/qwerty-development/rbs-restaurant-sub003/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID вместе с назначенными столами
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"guest_name",
		"party_size",
		"start_time",
		"turn_time_minutes",
		"status",
		"special_offer_id",
		"checked_in_at",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	tablesByReservation, err := r.loadTableIDs(ctx, []uuid.UUID{res.ID})
	if err != nil {
		return nil, err
	}
	res.TableIDs = tablesByReservation[res.ID]

	return res, nil
}

// ListOccupying получает все бронирования, занимающие хотя бы один из
// указанных столов (статус вне терминального набора)
// Внутри транзакции найденные строки блокируются (FOR UPDATE) — на этом
// держится атомарность проверки конфликтов и последующей записи
func (r *Repository) ListOccupying(ctx context.Context, restaurantID uuid.UUID, tableIDs []uuid.UUID) ([]*domain.Reservation, error) {
	if len(tableIDs) == 0 {
		return []*domain.Reservation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	terminalStatusStrings := make([]string, len(domain.TerminalStatuses))
	for i, s := range domain.TerminalStatuses {
		terminalStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"guest_name",
		"party_size",
		"start_time",
		"turn_time_minutes",
		"status",
		"special_offer_id",
		"checked_in_at",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		Where(squirrel.NotEq{"status": terminalStatusStrings}).
		Where(squirrel.Expr(
			"id IN (SELECT reservation_id FROM reservation_tables WHERE table_id = ANY(?))",
			pq.Array(uuidStrings(tableIDs)),
		)).
		OrderBy("start_time ASC", "id ASC")

	// FOR UPDATE нельзя совмещать с агрегатами, поэтому столы бронирований
	// дочитываются отдельным запросом через loadTableIDs
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if len(reservations) == 0 {
		return reservations, nil
	}

	ids := make([]uuid.UUID, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
	}

	tablesByReservation, err := r.loadTableIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, res := range reservations {
		res.TableIDs = tablesByReservation[res.ID]
	}

	return reservations, nil
}

// UpdateStatus обновляет статус бронирования
// При stampCheckIn проставляет checked_in_at, если он ещё не установлен
// (переход в arrived фиксирует фактический приход гостя)
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DiningStatus, stampCheckIn bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if stampCheckIn {
		updateBuilder = updateBuilder.Set("checked_in_at", squirrel.Expr("COALESCE(checked_in_at, NOW())"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel переводит бронирование в терминальный статус отмены,
// фиксируя причину и время отмены
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, status domain.DiningStatus, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ReplaceTables атомарно заменяет набор столов бронирования
// Вызывается только внутри транзакции (удаление и вставка — одно действие)
func (r *Repository) ReplaceTables(ctx context.Context, id uuid.UUID, tableIDs []uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("reservation_tables").
		Where(squirrel.Eq{"reservation_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTables - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceTables - execute delete: %v", ErrExecQuery, err)
	}

	if len(tableIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("reservation_tables").
		Columns("reservation_id", "table_id")
	for _, tableID := range tableIDs {
		insertBuilder = insertBuilder.Values(id, tableID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTables - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceTables - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadTableIDs дочитывает назначенные столы для набора бронирований
func (r *Repository) loadTableIDs(ctx context.Context, reservationIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("reservation_id", "table_id").
		From("reservation_tables").
		Where(squirrel.Eq{"reservation_id": reservationIDs}).
		OrderBy("reservation_id ASC", "table_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadTableIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadTableIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var reservationID, tableID uuid.UUID
		if err := rows.Scan(&reservationID, &tableID); err != nil {
			return nil, fmt.Errorf("%w: loadTableIDs - scan row: %v", ErrScanRow, err)
		}
		result[reservationID] = append(result[reservationID], tableID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadTableIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RestaurantID,
		&res.GuestName,
		&res.PartySize,
		&res.StartTime,
		&res.TurnTimeMinutes,
		&res.Status,
		&res.SpecialOfferID,
		&res.CheckedInAt,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanReservation - scan row: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// uuidStrings конвертирует uuid-ы в строки для pq.Array
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
