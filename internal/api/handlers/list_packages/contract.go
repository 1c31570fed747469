package list_packages

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

type StudioService interface {
	ListPackages(ctx context.Context, studioID int64) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
