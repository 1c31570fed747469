package delete_studio

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/studios"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgStudioNotFound  = "студия не найдена"
	msgStudioInUse     = "у студии есть пакеты или слоты"
)

type Handler struct {
	service StudioService
	logger  Logger
}

func NewHandler(service StudioService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/studios/{studioId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := handlers.PathInt64(r, "studioId")
	if err != nil {
		h.logger.Warn("DELETE /studios/{id} - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	if err := h.service.DeleteStudio(r.Context(), studioID); err != nil {
		switch {
		case errors.Is(err, studios.ErrStudioNotFound):
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, studios.ErrInUse):
			handlers.RespondConflict(w, msgStudioInUse)

		default:
			h.logger.Error("DELETE /studios/{id} - Failed to delete studio: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /studios/{id} - Studio deleted: studio_id=%d", studioID)
	w.WriteHeader(http.StatusNoContent)
}
