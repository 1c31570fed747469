package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/pkg/ptr"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func seedStudio(t *testing.T, s *Store) *domain.Studio {
	t.Helper()
	studio, err := s.Studios().Create(context.Background(), &domain.Studio{Name: "Loft", Active: true})
	require.NoError(t, err)
	return studio
}

func TestTransactionManager_RollbackRestoresData(t *testing.T) {
	s := New()
	ctx := context.Background()
	studio := seedStudio(t, s)

	wantErr := errors.New("abort")
	err := s.TxManager().Do(ctx, func(txCtx context.Context) error {
		_, err := s.Slots().Create(txCtx, &domain.Slot{
			StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00",
		})
		require.NoError(t, err)
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)

	count, err := s.Slots().CountByStudioAndDate(ctx, studio.ID, testDate)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Последовательность ID тоже откатывается
	slot, err := s.Slots().Create(ctx, &domain.Slot{
		StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), slot.ID)
}

func TestTransactionManager_NestedCommit(t *testing.T) {
	s := New()
	ctx := context.Background()
	studio := seedStudio(t, s)

	err := s.TxManager().Do(ctx, func(txCtx context.Context) error {
		return s.TxManager().DoSerializable(txCtx, func(inner context.Context) error {
			_, err := s.Packages().Create(inner, &domain.Package{StudioID: studio.ID, Name: "Basic", Price: 100, DurationMinutes: 60})
			return err
		})
	})
	require.NoError(t, err)

	pkgs, err := s.Packages().ListByStudio(ctx, studio.ID)
	require.NoError(t, err)
	assert.Len(t, pkgs, 1)
}

func TestTransactionManager_Serializes(t *testing.T) {
	s := New()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.TxManager().Do(ctx, func(context.Context) error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestSlots_UniqueStartAndBatchAtomicity(t *testing.T) {
	s := New()
	ctx := context.Background()
	studio := seedStudio(t, s)

	err := s.Slots().CreateBatch(ctx, []*domain.Slot{
		{StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00"},
		{StudioID: studio.ID, Date: testDate, StartTime: "10:00", EndTime: "11:00"},
		{StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00"},
	})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	count, err := s.Slots().CountByStudioAndDate(ctx, studio.ID, testDate)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSlots_ListFiltersAndOrders(t *testing.T) {
	s := New()
	ctx := context.Background()
	studio := seedStudio(t, s)

	require.NoError(t, s.Slots().CreateBatch(ctx, []*domain.Slot{
		{StudioID: studio.ID, Date: testDate, StartTime: "11:00", EndTime: "12:00"},
		{StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00", Held: true},
		{StudioID: studio.ID, Date: testDate, StartTime: "10:00", EndTime: "11:00"},
		{StudioID: studio.ID, Date: testDate.AddDate(0, 0, 1), StartTime: "09:00", EndTime: "10:00"},
	}))

	all, err := s.Slots().ListByStudioAndDate(ctx, studio.ID, testDate.Add(15*time.Hour), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "09:00", all[0].StartTime.String())
	assert.Equal(t, "11:00", all[2].StartTime.String())

	free, err := s.Slots().ListByStudioAndDate(ctx, studio.ID, testDate, ptr.Ptr(false))
	require.NoError(t, err)
	assert.Len(t, free, 2)
}

func TestBookings_ActiveSlotUniqueness(t *testing.T) {
	s := New()
	ctx := context.Background()
	studio := seedStudio(t, s)

	pkg, err := s.Packages().Create(ctx, &domain.Package{StudioID: studio.ID, Name: "Basic", Price: 100, DurationMinutes: 60})
	require.NoError(t, err)
	slot, err := s.Slots().Create(ctx, &domain.Slot{StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00"})
	require.NoError(t, err)

	first, err := s.Bookings().Create(ctx, &domain.Booking{
		UserID: 1, StudioID: studio.ID, PackageID: pkg.ID, SlotID: slot.ID, Status: domain.StatusPending, TotalPrice: 100,
	})
	require.NoError(t, err)

	_, err = s.Bookings().Create(ctx, &domain.Booking{
		UserID: 2, StudioID: studio.ID, PackageID: pkg.ID, SlotID: slot.ID, Status: domain.StatusPending, TotalPrice: 100,
	})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	require.NoError(t, s.Bookings().UpdateStatus(ctx, first.ID, domain.StatusCancelled))

	cancelled, err := s.Bookings().GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.NotNil(t, cancelled.CancelledAt)

	_, err = s.Bookings().Create(ctx, &domain.Booking{
		UserID: 2, StudioID: studio.ID, PackageID: pkg.ID, SlotID: slot.ID, Status: domain.StatusPending, TotalPrice: 100,
	})
	assert.NoError(t, err)
}

func TestDelete_Restrict(t *testing.T) {
	s := New()
	ctx := context.Background()
	studio := seedStudio(t, s)

	pkg, err := s.Packages().Create(ctx, &domain.Package{StudioID: studio.ID, Name: "Basic", Price: 100, DurationMinutes: 60})
	require.NoError(t, err)
	slot, err := s.Slots().Create(ctx, &domain.Slot{StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00"})
	require.NoError(t, err)
	_, err = s.Bookings().Create(ctx, &domain.Booking{
		UserID: 1, StudioID: studio.ID, PackageID: pkg.ID, SlotID: slot.ID, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Studios().Delete(ctx, studio.ID), domain.ErrInUse)
	assert.ErrorIs(t, s.Packages().Delete(ctx, pkg.ID), domain.ErrInUse)
	assert.ErrorIs(t, s.Slots().Delete(ctx, slot.ID), domain.ErrInUse)
	assert.ErrorIs(t, s.Studios().Delete(ctx, 999), domain.ErrStudioNotFound)
}

func TestStudios_NameTaken(t *testing.T) {
	s := New()
	seedStudio(t, s)

	_, err := s.Studios().Create(context.Background(), &domain.Studio{Name: "Loft"})
	assert.ErrorIs(t, err, domain.ErrStudioNameTaken)
}
