package get_held_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	slotsHandler "github.com/m04kA/StudioBookingService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/StudioBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/StudioBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStudioNotFound  = "студия не найдена"
)

type Handler struct {
	useCase HeldSlotsUseCase
	logger  Logger
}

func NewHandler(useCase HeldSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/held-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := handlers.PathInt64(r, "studioId")
	if err != nil {
		h.logger.Warn("GET /studios/{id}/held-slots - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /studios/{id}/held-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ListHeld(r.Context(), &getAvailableSlots.Request{StudioID: studioID, Date: date})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrStudioNotFound) {
			handlers.RespondNotFound(w, msgStudioNotFound)
			return
		}
		h.logger.Error("GET /studios/{id}/held-slots - Failed to get slots: studio_id=%d, error=%v", studioID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slotsHandler.FromUseCaseResponse(result))
}
