package generate_slots

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/slots/models"
)

type SlotService interface {
	GenerateSlots(ctx context.Context, studioID int64, days int) (*models.GenerateSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
