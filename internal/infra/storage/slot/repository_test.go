package slot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/StudioBookingService/pkg/types"
)

var selectByID = "SELECT " + strings.Join(columns, ", ") + " FROM slots WHERE id = $1"

func newMockRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func TestLockByID_InTransactionLocksRow(t *testing.T) {
	ctx := context.Background()
	repo, db, mock := newMockRepo(t)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(selectByID + " FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(7), int64(3), date, "10:00:00", "11:00:00", false, created))
	mock.ExpectRollback()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	slot, err := repo.LockByID(dbmetrics.WithTx(ctx, tx), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), slot.StudioID)
	assert.Equal(t, date, slot.Date)
	assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
	assert.Equal(t, types.TimeString("11:00"), slot.EndTime)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLockByID_OutsideTransactionDoesNotLock(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(selectByID).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.LockByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_InTransactionDoesNotLock(t *testing.T) {
	ctx := context.Background()
	repo, db, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(selectByID).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(ctx, tx), 9)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}
