package list_packages

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/studios"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgStudioNotFound  = "студия не найдена"
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

// Handle GET /api/v1/studios/{studioId}/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := handlers.PathInt64(r, "studioId")
	if err != nil {
		h.logger.Warn("GET /studios/{id}/packages - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	result, err := h.service.ListPackages(r.Context(), studioID)
	if err != nil {
		if errors.Is(err, studios.ErrStudioNotFound) {
			handlers.RespondNotFound(w, msgStudioNotFound)
			return
		}
		h.logger.Error("GET /studios/{id}/packages - Failed to list packages: studio_id=%d, error=%v", studioID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
