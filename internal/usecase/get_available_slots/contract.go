package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// StudioRepository интерфейс репозитория студий
type StudioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByStudioAndDate(ctx context.Context, studioID int64, date time.Time, held *bool) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
