package list_studios

import (
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
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

// Handle GET /api/v1/studios
// Query params: includeInactive=true показывает и неактивные студии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.ListStudios(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /studios - Failed to list studios: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Studios)
}
