package slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = fmt.Errorf("slots: %w", domain.ErrStudioNotFound)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("slots: %w", domain.ErrSlotNotFound)

	// ErrSlotUnavailable возвращается, когда интервал пересекается с существующим слотом
	ErrSlotUnavailable = fmt.Errorf("slots: %w", domain.ErrSlotUnavailable)

	// ErrSlotHeld возвращается при удалении занятого слота
	ErrSlotHeld = fmt.Errorf("slots: %w", domain.ErrSlotHeld)

	// ErrInUse возвращается, когда на слот ссылаются бронирования
	ErrInUse = fmt.Errorf("slots: %w", domain.ErrInUse)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
