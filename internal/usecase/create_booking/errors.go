package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("create_booking: %w", domain.ErrSlotNotFound)

	// ErrSlotUnavailable возвращается, когда слот уже занят
	ErrSlotUnavailable = fmt.Errorf("create_booking: %w", domain.ErrSlotUnavailable)

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = fmt.Errorf("create_booking: %w", domain.ErrPackageNotFound)

	// ErrPackageStudioMismatch возвращается, когда пакет принадлежит другой студии
	ErrPackageStudioMismatch = errors.New("create_booking: package does not belong to the slot's studio")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
