package get_package

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

type StudioService interface {
	GetPackage(ctx context.Context, id int64) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
