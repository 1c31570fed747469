package ensure_slots

import (
	"context"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// StudioRepository интерфейс репозитория студий
type StudioRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Studio, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CountByStudioAndDate(ctx context.Context, studioID int64, date time.Time) (int, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик сгенерированных слотов
type Metrics interface {
	AddSlotsGenerated(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
