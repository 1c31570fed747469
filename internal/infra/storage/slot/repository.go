package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/infra/storage/pgerrors"
	"github.com/m04kA/StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/StudioBookingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"studio_id",
	"date",
	"start_time",
	"end_time",
	"held",
	"created_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один слот
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns("studio_id", "date", "start_time", "end_time", "held").
		Values(slot.StudioID, slot.Date, slot.StartTime, slot.EndTime, slot.Held).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt); err != nil {
		return nil, mapWriteError("Create", err)
	}

	return slot, nil
}

// CreateBatch вставляет слоты одним запросом и проставляет им ID
// Используйте внутри транзакции: при ошибке не сохраняется ни один слот
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("slots").
		Columns("studio_id", "date", "start_time", "end_time", "held")
	for _, s := range slots {
		builder = builder.Values(s.StudioID, s.Date, s.StartTime, s.EndTime, s.Held)
	}

	query, args, err := builder.Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("CreateBatch", err)
	}
	defer rows.Close()

	// PostgreSQL возвращает строки RETURNING в порядке VALUES
	i := 0
	for rows.Next() {
		if i >= len(slots) {
			return fmt.Errorf("%w: CreateBatch - unexpected extra row", ErrScanRow)
		}
		if err := rows.Scan(&slots[i].ID, &slots[i].CreatedAt); err != nil {
			return fmt.Errorf("%w: CreateBatch - scan row: %v", ErrScanRow, err)
		}
		i++
	}

	if err := rows.Err(); err != nil {
		return mapWriteError("CreateBatch", err)
	}

	return nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getByID(ctx, "GetByID", id, false)
}

// LockByID получает слот с блокировкой строки (SELECT ... FOR UPDATE)
// Конкурирующие транзакции ждут, пока блокировка не будет снята
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getByID(ctx, "LockByID", id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, op string, id int64, forUpdate bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, op, err)
	}

	return slot, nil
}

// ListByStudioAndDate получает слоты студии на дату, отсортированные по времени начала
// held == nil возвращает все слоты, иначе только с указанным флагом
func (r *Repository) ListByStudioAndDate(ctx context.Context, studioID int64, date time.Time, held *bool) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"studio_id": studioID}).
		Where(squirrel.Eq{"date": domain.NormalizeDate(date)}).
		OrderBy("start_time ASC")

	if held != nil {
		builder = builder.Where(squirrel.Eq{"held": *held})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStudioAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStudioAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStudioAndDate - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStudioAndDate - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// CountByStudioAndDate количество слотов студии на дату
func (r *Repository) CountByStudioAndDate(ctx context.Context, studioID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slots").
		Where(squirrel.Eq{"studio_id": studioID}).
		Where(squirrel.Eq{"date": domain.NormalizeDate(date)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByStudioAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStudioAndDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// SetHeld меняет флаг held слота
func (r *Repository) SetHeld(ctx context.Context, id int64, held bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("held", held).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetHeld - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetHeld - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetHeld - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
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
		return ErrSlotNotFound
	}

	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsUniqueViolation(err):
		return ErrSlotConflict
	case pgerrors.IsForeignKeyViolation(err):
		return ErrStudioNotFound
	default:
		return fmt.Errorf("%w: %s - execute insert: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot

	err := row.Scan(
		&slot.ID,
		&slot.StudioID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Held,
		&slot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Date = domain.NormalizeDate(slot.Date)
	return &slot, nil
}
