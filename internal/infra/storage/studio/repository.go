package studio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/infra/storage/pgerrors"
	"github.com/m04kA/StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/StudioBookingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"description",
	"image_url",
	"opening_hour",
	"closing_hour",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со студиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория студий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает студию
func (r *Repository) Create(ctx context.Context, studio *domain.Studio) (*domain.Studio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("studios").
		Columns("name", "description", "image_url", "opening_hour", "closing_hour", "active").
		Values(studio.Name, studio.Description, studio.ImageURL, studio.OpeningHour, studio.ClosingHour, studio.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&studio.ID, &studio.CreatedAt, &studio.UpdatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return studio, nil
}

// GetByID получает студию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, false)
}

// LockByID получает студию с блокировкой строки (FOR NO KEY UPDATE)
// Блокировка действует только внутри транзакции. Проверки внешних ключей
// (FOR KEY SHARE) при вставке слотов и бронирований ее не ждут.
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Studio, error) {
	return r.getOne(ctx, "LockByID", squirrel.Eq{"id": id}, dbmetrics.IsInTransaction(ctx))
}

// GetByName получает студию по названию
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Studio, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"name": name}, false)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq, lock bool) (*domain.Studio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("studios").Where(where)
	if lock {
		builder = builder.Suffix("FOR NO KEY UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	studio, err := scanStudio(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan studio: %v", ErrScanRow, op, err)
	}

	return studio, nil
}

// List получает список студий, отсортированный по названию
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Studio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("studios").OrderBy("name ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	studios := make([]*domain.Studio, 0)
	for rows.Next() {
		studio, err := scanStudio(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		studios = append(studios, studio)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return studios, nil
}

// Delete удаляет студию
// Внешние ключи packages/slots (ON DELETE RESTRICT) не дают удалить используемую студию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("studios").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStudioNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudio(row rowScanner) (*domain.Studio, error) {
	var (
		studio                   domain.Studio
		description, imageURL    sql.NullString
		openingHour, closingHour sql.NullInt64
	)

	err := row.Scan(
		&studio.ID,
		&studio.Name,
		&description,
		&imageURL,
		&openingHour,
		&closingHour,
		&studio.Active,
		&studio.CreatedAt,
		&studio.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		studio.Description = &description.String
	}
	if imageURL.Valid {
		studio.ImageURL = &imageURL.String
	}
	if openingHour.Valid {
		h := int(openingHour.Int64)
		studio.OpeningHour = &h
	}
	if closingHour.Valid {
		h := int(closingHour.Int64)
		studio.ClosingHour = &h
	}

	return &studio, nil
}
