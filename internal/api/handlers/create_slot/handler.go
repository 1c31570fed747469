package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/slots"
	"github.com/m04kA/StudioBookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректные дата или время слота"
	msgStudioNotFound     = "студия не найдена"
	msgSlotOverlaps       = "слот пересекается с существующим"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, slots.ErrStudioNotFound):
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, slots.ErrSlotUnavailable):
			h.logger.Warn("POST /slots - Slot overlaps: studio_id=%d, date=%s, %s-%s",
				req.StudioID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotOverlaps)

		default:
			h.logger.Error("POST /slots - Failed to create slot: studio_id=%d, error=%v", req.StudioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, studio_id=%d", result.ID, result.StudioID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
