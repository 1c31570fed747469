package get_all_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/bookings"
	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgInvalidFilter   = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params (все опциональны): studioId, status, date (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if studioIDStr := query.Get("studioId"); studioIDStr != "" {
		studioID, err := strconv.ParseInt(studioIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid studio ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStudioID)
			return
		}
		req.StudioID = &studioID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if date := query.Get("date"); date != "" {
		req.Date = &date
	}

	result, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
