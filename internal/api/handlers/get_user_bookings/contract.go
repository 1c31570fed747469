package get_user_bookings

import (
	"context"

	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
)

// BookingService история бронирований пользователя, новые первыми
type BookingService interface {
	GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
