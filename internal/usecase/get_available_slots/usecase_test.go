package get_available_slots

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
	"github.com/m04kA/StudioBookingService/pkg/logger"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*memstore.Store, *domain.Studio) {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()

	studio, err := store.Studios().Create(ctx, &domain.Studio{Name: "Loft", Active: true})
	require.NoError(t, err)

	require.NoError(t, store.Slots().CreateBatch(ctx, []*domain.Slot{
		{StudioID: studio.ID, Date: testDate, StartTime: "11:00", EndTime: "12:00"},
		{StudioID: studio.ID, Date: testDate, StartTime: "09:00", EndTime: "10:00"},
		{StudioID: studio.ID, Date: testDate, StartTime: "10:00", EndTime: "11:00", Held: true},
	}))

	return store, studio
}

func TestListAvailable_ExcludesHeld(t *testing.T) {
	store, studio := seed(t)
	uc := NewUseCase(store.Studios(), store.Slots(), logger.NewNop())

	resp, err := uc.ListAvailable(context.Background(), &Request{StudioID: studio.ID, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[1].StartTime.String())
	for _, s := range resp.Slots {
		assert.False(t, s.Held)
	}
}

func TestListHeld(t *testing.T) {
	store, studio := seed(t)
	uc := NewUseCase(store.Studios(), store.Slots(), logger.NewNop())

	resp, err := uc.ListHeld(context.Background(), &Request{StudioID: studio.ID, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
}

func TestListAvailable_EmptyDate(t *testing.T) {
	store, studio := seed(t)
	uc := NewUseCase(store.Studios(), store.Slots(), logger.NewNop())

	resp, err := uc.ListAvailable(context.Background(), &Request{StudioID: studio.ID, Date: testDate.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestListAvailable_StudioNotFound(t *testing.T) {
	uc := NewUseCase(memstore.New().Studios(), memstore.New().Slots(), logger.NewNop())

	_, err := uc.ListAvailable(context.Background(), &Request{StudioID: 3, Date: testDate})
	assert.ErrorIs(t, err, ErrStudioNotFound)
}

func TestListAvailable_InvalidInput(t *testing.T) {
	uc := NewUseCase(memstore.New().Studios(), memstore.New().Slots(), logger.NewNop())

	_, err := uc.ListAvailable(context.Background(), &Request{StudioID: -1, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) ListByStudioAndDate(ctx context.Context, studioID int64, date time.Time, held *bool) ([]*domain.Slot, error) {
	args := m.Called(ctx, studioID, date, held)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Slot), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListAvailable_NeverReturnsHeld(t *testing.T) {
	store, studio := seed(t)

	slots := &mockSlotRepo{}
	slots.On("ListByStudioAndDate", mock.Anything, studio.ID, testDate, mock.Anything).Return([]*domain.Slot{
		{ID: 1, StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, StartTime: "10:00", EndTime: "11:00", Held: true},
	}, nil)

	uc := NewUseCase(store.Studios(), slots, logger.NewNop())

	resp, err := uc.ListAvailable(context.Background(), &Request{StudioID: studio.ID, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
}

func TestListAvailable_RepositoryError(t *testing.T) {
	store, studio := seed(t)

	slots := &mockSlotRepo{}
	slots.On("ListByStudioAndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	uc := NewUseCase(store.Studios(), slots, logger.NewNop())

	_, err := uc.ListAvailable(context.Background(), &Request{StudioID: studio.ID, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}
