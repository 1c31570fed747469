package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/infra/storage/memstore"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
	"github.com/m04kA/StudioBookingService/pkg/logger"
	"github.com/m04kA/StudioBookingService/pkg/ptr"
)

var today = time.Date(2025, 10, 15, 3, 0, 0, 0, time.UTC)

type mockStudioLister struct {
	mock.Mock
}

func (m *mockStudioLister) List(ctx context.Context, activeOnly bool) ([]*domain.Studio, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Studio), args.Error(1)
}

type mockSlotGenerator struct {
	mock.Mock
}

func (m *mockSlotGenerator) ExecuteForDays(ctx context.Context, req *ensure_slots.DaysRequest) (*ensure_slots.DaysResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ensure_slots.DaysResponse), args.Error(1)
}

func TestScheduler_TickFillsHorizonForActiveStudios(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	active, err := store.Studios().Create(ctx, &domain.Studio{Name: "A", OpeningHour: ptr.Ptr(9), ClosingHour: ptr.Ptr(11), Active: true})
	require.NoError(t, err)
	inactive, err := store.Studios().Create(ctx, &domain.Studio{Name: "B", Active: false})
	require.NoError(t, err)

	generator := ensure_slots.NewUseCase(store.Studios(), store.Slots(), store.TxManager(), nil,
		ensure_slots.Config{DefaultOpeningHour: 9, DefaultClosingHour: 18}, logger.NewNop())

	s := New(store.Studios(), generator, time.Hour, 3, logger.NewNop())
	s.now = func() time.Time { return today }

	s.tick(ctx)
	s.tick(ctx)

	day := domain.NormalizeDate(today)
	for i := 0; i < 3; i++ {
		count, err := store.Slots().CountByStudioAndDate(ctx, active.ID, day.AddDate(0, 0, i))
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	}

	count, err := store.Slots().CountByStudioAndDate(ctx, inactive.ID, day)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScheduler_StudioFailureDoesNotStopSweep(t *testing.T) {
	studios := &mockStudioLister{}
	generator := &mockSlotGenerator{}

	studios.On("List", mock.Anything, true).Return([]*domain.Studio{{ID: 1}, {ID: 2}}, nil)
	generator.On("ExecuteForDays", mock.Anything, mock.MatchedBy(func(r *ensure_slots.DaysRequest) bool { return r.StudioID == 1 })).
		Return(nil, errors.New("boom"))
	generator.On("ExecuteForDays", mock.Anything, mock.MatchedBy(func(r *ensure_slots.DaysRequest) bool { return r.StudioID == 2 })).
		Return(&ensure_slots.DaysResponse{StudioID: 2, Created: 9}, nil)

	s := New(studios, generator, time.Hour, 7, logger.NewNop())
	s.tick(context.Background())

	generator.AssertNumberOfCalls(t, "ExecuteForDays", 2)
	studios.AssertExpectations(t)
}

func TestScheduler_ListFailure(t *testing.T) {
	studios := &mockStudioLister{}
	generator := &mockSlotGenerator{}
	studios.On("List", mock.Anything, true).Return(nil, errors.New("db error"))

	s := New(studios, generator, time.Hour, 7, logger.NewNop())
	s.tick(context.Background())

	generator.AssertNotCalled(t, "ExecuteForDays", mock.Anything, mock.Anything)
}

func TestScheduler_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	studios := &mockStudioLister{}
	generator := &mockSlotGenerator{}
	listed := make(chan struct{}, 1)
	studios.On("List", mock.Anything, true).Return([]*domain.Studio{}, nil).Run(func(mock.Arguments) {
		select {
		case listed <- struct{}{}:
		default:
		}
	})

	s := New(studios, generator, time.Hour, 7, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-listed:
	case <-time.After(time.Second):
		t.Fatal("first sweep did not run")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
