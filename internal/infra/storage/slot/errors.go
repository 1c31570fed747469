package slot

import (
	"errors"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = domain.ErrSlotNotFound

	// ErrSlotConflict возвращается при нарушении уникальности (studio_id, date, start_time)
	ErrSlotConflict = domain.ErrSlotUnavailable

	// ErrStudioNotFound возвращается при вставке слота для несуществующей студии
	ErrStudioNotFound = domain.ErrStudioNotFound

	// ErrInUse возвращается при удалении слота, на который ссылаются бронирования
	ErrInUse = domain.ErrInUse

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
