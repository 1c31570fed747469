package get_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/studios"
)

const (
	msgInvalidPackageID = "некорректный ID пакета"
	msgPackageNotFound  = "пакет не найден"
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

// Handle GET /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathInt64(r, "packageId")
	if err != nil {
		h.logger.Warn("GET /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	pkg, err := h.service.GetPackage(r.Context(), packageID)
	if err != nil {
		if errors.Is(err, studios.ErrPackageNotFound) {
			handlers.RespondNotFound(w, msgPackageNotFound)
			return
		}
		h.logger.Error("GET /packages/{id} - Failed to get package: package_id=%d, error=%v", packageID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pkg)
}
