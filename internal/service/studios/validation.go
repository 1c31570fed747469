package studios

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/service/studios/models"
)

func validateCreateStudio(req *models.CreateStudioRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxStudioNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxStudioNameLength)
	}

	if req.OpeningHour != nil && !domain.ValidHour(*req.OpeningHour) {
		return fmt.Errorf("%w: openingHour must be in [%d, %d]", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	if req.ClosingHour != nil && !domain.ValidHour(*req.ClosingHour) {
		return fmt.Errorf("%w: closingHour must be in [%d, %d]", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	return nil
}

func validateCreatePackage(studioID int64, req *models.CreatePackageRequest) error {
	if studioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxPackageNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxPackageNameLength)
	}

	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
