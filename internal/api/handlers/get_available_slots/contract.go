package get_available_slots

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
	getAvailableSlots "github.com/m04kA/StudioBookingService/internal/usecase/get_available_slots"
)

// EnsureSlotsUseCase генерация сетки на дату, если ее еще нет
type EnsureSlotsUseCase interface {
	Execute(ctx context.Context, req *ensure_slots.Request) (*ensure_slots.Response, error)
}

// AvailableSlotsUseCase чтение свободных слотов
type AvailableSlotsUseCase interface {
	ListAvailable(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
