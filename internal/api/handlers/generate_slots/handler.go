package generate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/slots"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgInvalidDays     = "некорректное количество дней"
	msgStudioNotFound  = "студия не найдена"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/studios/{studioId}/slots/generate?days=N
// Без days используется значение по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := handlers.PathInt64(r, "studioId")
	if err != nil {
		h.logger.Warn("POST /studios/{id}/slots/generate - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			h.logger.Warn("POST /studios/{id}/slots/generate - Invalid days: %q", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.service.GenerateSlots(r.Context(), studioID, days)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrStudioNotFound):
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /studios/{id}/slots/generate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("POST /studios/{id}/slots/generate - Failed to generate slots: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /studios/{id}/slots/generate - Slots generated: studio_id=%d, days=%d, created=%d",
		studioID, result.Days, result.Created)
	handlers.RespondJSON(w, http.StatusOK, result)
}
