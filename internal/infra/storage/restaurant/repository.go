package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
	"github.com/m04kA/SMC-TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableBookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий ресторанов и их столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ресторан
func (r *Repository) Create(ctx context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurants").
		Columns("name", "work_starts", "work_ends", "staff_ids").
		Values(
			restaurant.Name,
			restaurant.WorkStarts,
			restaurant.WorkEnds,
			pq.Array(restaurant.StaffIDs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return restaurant, nil
}

// GetByID получает ресторан по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"work_starts",
		"work_ends",
		"staff_ids",
		"created_at",
		"updated_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var restaurant domain.Restaurant
	var staffIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.WorkStarts,
		&restaurant.WorkEnds,
		&staffIDs,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	restaurant.StaffIDs = []int64(staffIDs)
	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}

// UpdateWorkHours обновляет рабочие часы ресторана
func (r *Repository) UpdateWorkHours(ctx context.Context, id int64, hours domain.WorkHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurants").
		Set("work_starts", hours.Starts).
		Set("work_ends", hours.Ends).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWorkHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

// CreateTable добавляет стол в ресторан
// Номер стола уникален в пределах ресторана
func (r *Repository) CreateTable(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_tables").
		Columns("restaurant_id", "number", "floor", "seats").
		Values(table.RestaurantID, table.Number, table.Floor, table.Seats).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTable - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateTable
		}
		return nil, fmt.Errorf("%w: CreateTable - execute insert: %v", ErrExecQuery, err)
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	return table, nil
}

// GetTableByID получает стол ресторана по ID
func (r *Repository) GetTableByID(ctx context.Context, restaurantID, tableID int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := tableSelect().
		Where(squirrel.Eq{"restaurant_id": restaurantID, "id": tableID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTableByID - build select query: %v", ErrBuildQuery, err)
	}

	table, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableByID - scan table: %v", ErrScanRow, err)
	}

	return table, nil
}

// ListTables получает столы ресторана, отсортированные по этажу и номеру
func (r *Repository) ListTables(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := tableSelect().
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("floor ASC", "number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTables - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTables - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTables - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

func tableSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"restaurant_id",
		"number",
		"floor",
		"seats",
		"created_at",
		"updated_at",
	).From("restaurant_tables")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var table domain.Table
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&table.ID,
		&table.RestaurantID,
		&table.Number,
		&table.Floor,
		&table.Seats,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	return &table, nil
}
