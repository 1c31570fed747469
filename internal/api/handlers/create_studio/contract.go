package create_studio

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

type StudioService interface {
	CreateStudio(ctx context.Context, req *models.CreateStudioRequest) (*models.StudioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
