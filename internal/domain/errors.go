package domain

import "errors"

// Ошибки предметной области, общие для хранилищ и сценариев
var (
	ErrStudioNotFound  = errors.New("studio not found")
	ErrPackageNotFound = errors.New("package not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotUnavailable слот уже удерживается или пересекается с существующим
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrSlotHeld нельзя удалить слот, занятый бронированием
	ErrSlotHeld = errors.New("slot is held by a booking")

	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
	ErrForbidden         = errors.New("forbidden")

	// ErrInUse сущность нельзя удалить, пока на нее ссылаются
	ErrInUse = errors.New("entity is referenced and cannot be deleted")

	ErrStudioNameTaken = errors.New("studio name already taken")
)
