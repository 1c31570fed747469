package slots

import (
	"context"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
)

// StudioRepository интерфейс репозитория студий
type StudioRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Studio, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	LockByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListByStudioAndDate(ctx context.Context, studioID int64, date time.Time, held *bool) ([]*domain.Slot, error)
	Delete(ctx context.Context, id int64) error
}

// SlotGenerator генерация сетки слотов
type SlotGenerator interface {
	ExecuteForDays(ctx context.Context, req *ensure_slots.DaysRequest) (*ensure_slots.DaysResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
