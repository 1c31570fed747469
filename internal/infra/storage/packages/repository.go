package packages

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
	"studio_id",
	"name",
	"description",
	"price",
	"duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пакетами услуг студий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пакет
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("packages").
		Columns("studio_id", "name", "description", "price", "duration_minutes").
		Values(pkg.StudioID, pkg.Name, pkg.Description, pkg.Price, pkg.DurationMinutes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrStudioNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return pkg, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return pkg, nil
}

// ListByStudio получает пакеты студии, отсортированные по цене
func (r *Repository) ListByStudio(ctx context.Context, studioID int64) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("packages").
		Where(squirrel.Eq{"studio_id": studioID}).
		OrderBy("price ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStudio - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStudio - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Package, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStudio - scan row: %v", ErrScanRow, err)
		}
		result = append(result, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStudio - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет пакет
// Пакет, на который ссылаются бронирования, удалить нельзя (ON DELETE RESTRICT)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
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
		return ErrPackageNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPackage(row rowScanner) (*domain.Package, error) {
	var (
		pkg         domain.Package
		description sql.NullString
	)

	err := row.Scan(
		&pkg.ID,
		&pkg.StudioID,
		&pkg.Name,
		&description,
		&pkg.Price,
		&pkg.DurationMinutes,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		pkg.Description = &description.String
	}

	return &pkg, nil
}
