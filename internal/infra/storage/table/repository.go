package table

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

// Repository репозиторий для работы со столами и их комбинациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает все активные столы ресторана
// Столы сортируются по максимальной вместимости и ID — на этом порядке
// держится детерминизм подбора столов
func (r *Repository) ListActive(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"table_number",
		"capacity",
		"min_capacity",
		"max_capacity",
		"shape",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "is_active": true}).
		OrderBy("GREATEST(max_capacity, capacity) ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// GetByIDs получает столы по списку идентификаторов (включая неактивные —
// исторические бронирования могут ссылаться на выведенные столы)
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Table, error) {
	if len(ids) == 0 {
		return []*domain.Table{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"table_number",
		"capacity",
		"min_capacity",
		"max_capacity",
		"shape",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("restaurant_tables").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// ListActiveCombinations получает все активные комбинации столов ресторана
// Сортировка по объединенной вместимости и ID — для детерминизма подбора
func (r *Repository) ListActiveCombinations(ctx context.Context, restaurantID uuid.UUID) ([]*domain.TableCombination, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"primary_table_id",
		"secondary_table_id",
		"combined_capacity",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("table_combinations").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "is_active": true}).
		OrderBy("combined_capacity ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveCombinations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveCombinations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCombinations(rows)
}

// GetCombinationByPair ищет активную комбинацию для пары столов
// Пара неупорядоченная, поэтому проверяются обе ориентации
func (r *Repository) GetCombinationByPair(ctx context.Context, restaurantID, tableA, tableB uuid.UUID) (*domain.TableCombination, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"primary_table_id",
		"secondary_table_id",
		"combined_capacity",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("table_combinations").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "is_active": true}).
		Where(squirrel.Or{
			squirrel.Eq{"primary_table_id": tableA, "secondary_table_id": tableB},
			squirrel.Eq{"primary_table_id": tableB, "secondary_table_id": tableA},
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCombinationByPair - build select query: %v", ErrBuildQuery, err)
	}

	var combo domain.TableCombination
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&combo.ID,
		&combo.RestaurantID,
		&combo.PrimaryTableID,
		&combo.SecondaryTableID,
		&combo.CombinedCapacity,
		&combo.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCombinationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCombinationByPair - scan combination: %v", ErrScanRow, err)
	}

	combo.CreatedAt = createdAt.Time
	combo.UpdatedAt = updatedAt.Time

	return &combo, nil
}

// CreateCombination создает новую комбинацию столов
func (r *Repository) CreateCombination(ctx context.Context, combo *domain.TableCombination) (*domain.TableCombination, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("table_combinations").
		Columns(
			"restaurant_id",
			"primary_table_id",
			"secondary_table_id",
			"combined_capacity",
			"is_active",
		).
		Values(
			combo.RestaurantID,
			combo.PrimaryTableID,
			combo.SecondaryTableID,
			combo.CombinedCapacity,
			true,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCombination - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&combo.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCombination - execute insert: %v", ErrExecQuery, err)
	}

	combo.IsActive = true
	combo.CreatedAt = createdAt.Time
	combo.UpdatedAt = updatedAt.Time

	return combo, nil
}

// RetireCombination мягко выводит комбинацию из эксплуатации
// Физическое удаление запрещено: история бронирований ссылается на пару
func (r *Repository) RetireCombination(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("table_combinations").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RetireCombination - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RetireCombination - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RetireCombination - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCombinationNotFound
	}

	return nil
}

// scanTables сканирует результаты запроса в слайс столов
func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var t domain.Table
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.RestaurantID,
			&t.Number,
			&t.Capacity,
			&t.MinCapacity,
			&t.MaxCapacity,
			&t.Shape,
			&t.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// scanCombinations сканирует результаты запроса в слайс комбинаций
func (r *Repository) scanCombinations(rows *sql.Rows) ([]*domain.TableCombination, error) {
	combos := make([]*domain.TableCombination, 0)

	for rows.Next() {
		var c domain.TableCombination
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.RestaurantID,
			&c.PrimaryTableID,
			&c.SecondaryTableID,
			&c.CombinedCapacity,
			&c.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanCombinations - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		combos = append(combos, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCombinations - rows error: %v", ErrScanRow, err)
	}

	return combos, nil
}
