package create_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/studios"
	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

const (
	msgInvalidStudioID    = "некорректный ID студии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пакета"
	msgStudioNotFound     = "студия не найдена"
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

// Handle POST /api/v1/studios/{studioId}/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := handlers.PathInt64(r, "studioId")
	if err != nil {
		h.logger.Warn("POST /studios/{id}/packages - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	var req models.CreatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /studios/{id}/packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), studioID, &req)
	if err != nil {
		switch {
		case errors.Is(err, studios.ErrInvalidInput):
			h.logger.Warn("POST /studios/{id}/packages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, studios.ErrStudioNotFound):
			handlers.RespondNotFound(w, msgStudioNotFound)

		default:
			h.logger.Error("POST /studios/{id}/packages - Failed to create package: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /studios/{id}/packages - Package created: package_id=%d, studio_id=%d", pkg.ID, studioID)
	handlers.RespondJSON(w, http.StatusCreated, pkg)
}
