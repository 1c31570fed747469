package delete_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/StudioBookingService/internal/service/slots"
	"github.com/m04kA/StudioBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) DeleteSlot(ctx context.Context, slotID int64) error {
	return m.Called(ctx, slotID).Error(0)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", err: slots.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "held", err: slots.ErrSlotHeld, wantStatus: http.StatusConflict},
		{name: "referenced by bookings", err: slots.ErrInUse, wantStatus: http.StatusConflict},
		{name: "storage failure", err: slots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("DeleteSlot", mock.Anything, int64(8)).Return(tt.err)

			r := mux.NewRouter()
			r.HandleFunc("/slots/{slotId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/slots/8", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}
