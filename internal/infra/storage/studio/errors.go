package studio

import (
	"errors"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = domain.ErrStudioNotFound

	// ErrNameTaken возвращается при нарушении уникальности названия
	ErrNameTaken = domain.ErrStudioNameTaken

	// ErrInUse возвращается при удалении студии, на которую ссылаются пакеты или слоты
	ErrInUse = domain.ErrInUse

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("studio.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("studio.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("studio.repository: failed to scan row")
)
