package create_package

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

type StudioService interface {
	CreatePackage(ctx context.Context, studioID int64, req *models.CreatePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
