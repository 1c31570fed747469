package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/StudioBookingService/internal/service/bookings"
	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
	"github.com/m04kA/StudioBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "confirmed", body: `{"status":"confirmed"}`, wantStatus: http.StatusOK},
		{name: "unknown status", body: `{"status":"lost"}`, err: bookings.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "rejected transition", body: `{"status":"pending"}`, err: bookings.ErrInvalidTransition, wantStatus: http.StatusBadRequest},
		{name: "cancel cancelled", body: `{"status":"cancelled"}`, err: bookings.ErrAlreadyCancelled, wantStatus: http.StatusConflict},
		{name: "missing booking", body: `{"status":"confirmed"}`, err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			call := svc.On("UpdateStatus", mock.Anything, int64(4), mock.AnythingOfType("*models.UpdateStatusRequest"))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&models.BookingResponse{ID: 4, Status: "confirmed"}, nil)
			}

			r := mux.NewRouter()
			r.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/bookings/4/status", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &mockService{}
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/bookings/4/status", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
