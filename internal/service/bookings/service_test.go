package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/infra/storage/memstore"
	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
	"github.com/m04kA/StudioBookingService/pkg/logger"
	"github.com/m04kA/StudioBookingService/pkg/metrics"
	"github.com/m04kA/StudioBookingService/pkg/ptr"
	"github.com/m04kA/StudioBookingService/pkg/types"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

const ownerID int64 = 10

type fixture struct {
	store   *memstore.Store
	service *Service
	metrics *metrics.Metrics
	studio  *domain.Studio
	pkg     *domain.Package
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	studio, err := store.Studios().Create(ctx, &domain.Studio{Name: "Light Room", Active: true})
	require.NoError(t, err)
	pkg, err := store.Packages().Create(ctx, &domain.Package{StudioID: studio.ID, Name: "Portrait", Price: 1500, DurationMinutes: 60})
	require.NoError(t, err)

	svc := NewService(store.Bookings(), store.Slots(), store.TxManager(), m, strict, logger.NewNop())
	return &fixture{store: store, service: svc, metrics: m, studio: studio, pkg: pkg}
}

// book создает слот на указанный час и активное бронирование на него
func (f *fixture) book(t *testing.T, userID int64, hour int, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	ctx := context.Background()

	start := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)
	slot, err := f.store.Slots().Create(ctx, &domain.Slot{
		StudioID:  f.studio.ID,
		Date:      testDate,
		StartTime: types.NewTimeString(start),
		EndTime:   types.NewTimeString(start.Add(time.Hour)),
	})
	require.NoError(t, err)

	booking, err := f.store.Bookings().Create(ctx, &domain.Booking{
		UserID:     userID,
		StudioID:   f.studio.ID,
		PackageID:  f.pkg.ID,
		SlotID:     slot.ID,
		Status:     status,
		TotalPrice: f.pkg.Price,
	})
	require.NoError(t, err)
	require.NoError(t, f.store.Slots().SetHeld(ctx, slot.ID, status.IsActive()))
	return booking
}

func (f *fixture) slotHeld(t *testing.T, slotID int64) bool {
	t.Helper()
	slot, err := f.store.Slots().GetByID(context.Background(), slotID)
	require.NoError(t, err)
	return slot.Held
}

func TestCancel_ReleasesSlot(t *testing.T) {
	f := newFixture(t, true)
	booking := f.book(t, ownerID, 10, domain.StatusPending)

	resp, err := f.service.Cancel(context.Background(), booking.ID, models.Caller{UserID: ownerID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.NotNil(t, resp.CancelledAt)
	assert.False(t, f.slotHeld(t, booking.SlotID))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsCancelled.WithLabelValues("test")))
}

func TestCancel_Twice(t *testing.T) {
	f := newFixture(t, true)
	booking := f.book(t, ownerID, 10, domain.StatusConfirmed)
	ctx := context.Background()

	_, err := f.service.Cancel(ctx, booking.ID, models.Caller{UserID: ownerID})
	require.NoError(t, err)

	_, err = f.service.Cancel(ctx, booking.ID, models.Caller{UserID: ownerID})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestCancel_AccessRules(t *testing.T) {
	f := newFixture(t, true)
	booking := f.book(t, ownerID, 10, domain.StatusPending)
	ctx := context.Background()

	_, err := f.service.Cancel(ctx, booking.ID, models.Caller{UserID: ownerID + 1})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.True(t, f.slotHeld(t, booking.SlotID))

	_, err = f.service.Cancel(ctx, 999, models.Caller{UserID: ownerID})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.service.Cancel(ctx, booking.ID, models.Caller{UserID: 1, IsAdmin: true})
	assert.NoError(t, err)
}

func TestCancel_CompletedDependsOnStrictMode(t *testing.T) {
	strict := newFixture(t, true)
	booking := strict.book(t, ownerID, 10, domain.StatusCompleted)

	_, err := strict.service.Cancel(context.Background(), booking.ID, models.Caller{UserID: ownerID})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.True(t, strict.slotHeld(t, booking.SlotID))

	lenient := newFixture(t, false)
	booking = lenient.book(t, ownerID, 10, domain.StatusCompleted)

	_, err = lenient.service.Cancel(context.Background(), booking.ID, models.Caller{UserID: ownerID})
	assert.NoError(t, err)
	assert.False(t, lenient.slotHeld(t, booking.SlotID))
}

func TestCancel_SlotCanBeRebooked(t *testing.T) {
	f := newFixture(t, true)
	booking := f.book(t, ownerID, 10, domain.StatusPending)
	ctx := context.Background()

	_, err := f.service.Cancel(ctx, booking.ID, models.Caller{UserID: ownerID})
	require.NoError(t, err)

	_, err = f.store.Bookings().Create(ctx, &domain.Booking{
		UserID:    ownerID + 1,
		StudioID:  f.studio.ID,
		PackageID: f.pkg.ID,
		SlotID:    booking.SlotID,
		Status:    domain.StatusPending,
	})
	assert.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		strict     bool
		from       domain.BookingStatus
		to         string
		wantErr    error
		wantStatus domain.BookingStatus
		wantHeld   bool
	}{
		{name: "pending to confirmed", strict: true, from: domain.StatusPending, to: "confirmed", wantStatus: domain.StatusConfirmed, wantHeld: true},
		{name: "confirmed to completed", strict: true, from: domain.StatusConfirmed, to: "completed", wantStatus: domain.StatusCompleted, wantHeld: true},
		{name: "confirmed to cancelled releases slot", strict: true, from: domain.StatusConfirmed, to: "cancelled", wantStatus: domain.StatusCancelled, wantHeld: false},
		{name: "unknown status", strict: true, from: domain.StatusPending, to: "no_show", wantErr: ErrInvalidStatus, wantStatus: domain.StatusPending, wantHeld: true},
		{name: "strict rejects completed to pending", strict: true, from: domain.StatusCompleted, to: "pending", wantErr: ErrInvalidTransition, wantStatus: domain.StatusCompleted, wantHeld: true},
		{name: "lenient allows completed to pending", strict: false, from: domain.StatusCompleted, to: "pending", wantStatus: domain.StatusPending, wantHeld: true},
		{name: "cancelled is terminal", strict: false, from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition, wantStatus: domain.StatusCancelled, wantHeld: false},
		{name: "cancel cancelled", strict: true, from: domain.StatusCancelled, to: "cancelled", wantErr: ErrAlreadyCancelled, wantStatus: domain.StatusCancelled, wantHeld: false},
		{name: "same status is a no-op", strict: true, from: domain.StatusConfirmed, to: "confirmed", wantStatus: domain.StatusConfirmed, wantHeld: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.strict)
			booking := f.book(t, ownerID, 10, tt.from)

			resp, err := f.service.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, string(tt.wantStatus), resp.Status)
			}

			stored, err := f.store.Bookings().GetByID(context.Background(), booking.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, stored.Status)
			assert.Equal(t, tt.wantHeld, f.slotHeld(t, booking.SlotID))
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.service.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_Access(t *testing.T) {
	f := newFixture(t, true)
	booking := f.book(t, ownerID, 10, domain.StatusPending)
	ctx := context.Background()

	resp, err := f.service.GetByID(ctx, booking.ID, models.Caller{UserID: ownerID})
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, 1500.0, resp.TotalPrice)

	_, err = f.service.GetByID(ctx, booking.ID, models.Caller{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.service.GetByID(ctx, booking.ID, models.Caller{UserID: 99, IsAdmin: true})
	assert.NoError(t, err)

	_, err = f.service.GetByID(ctx, 404, models.Caller{UserID: ownerID})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	f := newFixture(t, true)
	f.book(t, ownerID, 9, domain.StatusPending)
	f.book(t, ownerID, 10, domain.StatusCancelled)
	f.book(t, ownerID+1, 11, domain.StatusPending)
	ctx := context.Background()

	all, err := f.service.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: ownerID})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	pending, err := f.service.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: ownerID, Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	require.Len(t, pending.Bookings, 1)
	assert.Equal(t, "pending", pending.Bookings[0].Status)

	_, err = f.service.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: ownerID, Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	empty, err := f.service.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 500})
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)
}

func TestListBookings_Filters(t *testing.T) {
	f := newFixture(t, true)
	f.book(t, 1, 9, domain.StatusPending)
	f.book(t, 2, 10, domain.StatusConfirmed)
	ctx := context.Background()

	resp, err := f.service.ListBookings(ctx, &models.ListBookingsRequest{StudioID: ptr.Ptr(f.studio.ID), Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].UserID)

	resp, err = f.service.ListBookings(ctx, &models.ListBookingsRequest{Date: ptr.Ptr("2025-10-15")})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = f.service.ListBookings(ctx, &models.ListBookingsRequest{Date: ptr.Ptr("2025-10-16")})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	_, err = f.service.ListBookings(ctx, &models.ListBookingsRequest{Date: ptr.Ptr("15.10.2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) SetHeld(ctx context.Context, id int64, held bool) error {
	args := m.Called(ctx, id, held)
	return args.Error(0)
}

func TestCancel_ReleaseFailureRollsBack(t *testing.T) {
	f := newFixture(t, true)
	booking := f.book(t, ownerID, 10, domain.StatusPending)

	slots := &mockSlotRepository{}
	slots.On("SetHeld", mock.Anything, booking.SlotID, false).Return(errors.New("connection reset"))
	svc := NewService(f.store.Bookings(), slots, f.store.TxManager(), nil, true, logger.NewNop())

	_, err := svc.Cancel(context.Background(), booking.ID, models.Caller{UserID: ownerID})
	assert.ErrorIs(t, err, ErrInternal)
	slots.AssertExpectations(t)

	stored, err := f.store.Bookings().GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}
