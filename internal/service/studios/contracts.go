package studios

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
)

// StudioRepository интерфейс репозитория студий
type StudioRepository interface {
	Create(ctx context.Context, studio *domain.Studio) (*domain.Studio, error)
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Studio, error)
	Delete(ctx context.Context, id int64) error
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	ListByStudio(ctx context.Context, studioID int64) ([]*domain.Package, error)
	Delete(ctx context.Context, id int64) error
}

// SlotGenerator генерация сетки слотов на горизонт
type SlotGenerator interface {
	ExecuteForDays(ctx context.Context, req *ensure_slots.DaysRequest) (*ensure_slots.DaysResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
