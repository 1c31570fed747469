package cancel_booking

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
)

// BookingService отмена освобождает слот в той же транзакции
type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, caller models.Caller) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
