package get_booking

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
)

// BookingService чтение бронирования владельцем или администратором
type BookingService interface {
	GetByID(ctx context.Context, id int64, caller models.Caller) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
