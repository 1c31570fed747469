package create_studio

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/studios"
	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные студии"
	msgNameTaken          = "студия с таким названием уже существует"
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

// Handle POST /api/v1/studios
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudioRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /studios - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	studio, err := h.service.CreateStudio(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, studios.ErrInvalidInput):
			h.logger.Warn("POST /studios - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, studios.ErrStudioNameTaken):
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("POST /studios - Failed to create studio: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /studios - Studio created successfully: studio_id=%d", studio.ID)
	handlers.RespondJSON(w, http.StatusCreated, studio)
}
