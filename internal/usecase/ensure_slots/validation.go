package ensure_slots

import "fmt"

// validateRequest валидирует запрос на одну дату
func validateRequest(req *Request) error {
	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDaysRequest валидирует запрос на несколько дней
func validateDaysRequest(req *DaysRequest) error {
	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.NumDays <= 0 {
		return fmt.Errorf("%w: numDays must be positive", ErrInvalidInput)
	}

	return nil
}
