package booking

import (
	"errors"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.ErrBookingNotFound

	// ErrSlotNotAvailable возвращается, когда на слот уже есть активное бронирование
	// (срабатывает частичный уникальный индекс bookings_active_slot_idx)
	ErrSlotNotAvailable = domain.ErrSlotUnavailable

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
