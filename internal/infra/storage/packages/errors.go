package packages

import (
	"errors"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

var (
	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = domain.ErrPackageNotFound

	// ErrStudioNotFound возвращается при создании пакета для несуществующей студии
	ErrStudioNotFound = domain.ErrStudioNotFound

	// ErrInUse возвращается при удалении пакета, на который ссылаются бронирования
	ErrInUse = domain.ErrInUse

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("packages.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("packages.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("packages.repository: failed to scan row")
)
