package ensure_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = fmt.Errorf("ensure_slots: %w", domain.ErrStudioNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ensure_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("ensure_slots: internal error")

	// errAlreadyGenerated параллельный вызов успел создать сетку на эту дату
	errAlreadyGenerated = errors.New("ensure_slots: slots already generated concurrently")
)
