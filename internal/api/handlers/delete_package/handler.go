package delete_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/service/studios"
)

const (
	msgInvalidPackageID = "некорректный ID пакета"
	msgPackageNotFound  = "пакет не найден"
	msgPackageInUse     = "на пакет ссылаются бронирования"
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

// Handle DELETE /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathInt64(r, "packageId")
	if err != nil {
		h.logger.Warn("DELETE /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		switch {
		case errors.Is(err, studios.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, studios.ErrInUse):
			handlers.RespondConflict(w, msgPackageInUse)

		default:
			h.logger.Error("DELETE /packages/{id} - Failed to delete package: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: package_id=%d", packageID)
	w.WriteHeader(http.StatusNoContent)
}
