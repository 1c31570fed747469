package studios

import (
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = fmt.Errorf("studios: %w", domain.ErrStudioNotFound)

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = fmt.Errorf("studios: %w", domain.ErrPackageNotFound)

	// ErrStudioNameTaken возвращается, когда студия с таким названием уже есть
	ErrStudioNameTaken = fmt.Errorf("studios: %w", domain.ErrStudioNameTaken)

	// ErrInUse возвращается при удалении студии или пакета, на которые есть ссылки
	ErrInUse = fmt.Errorf("studios: %w", domain.ErrInUse)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("studios: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("studios: internal error")
)
