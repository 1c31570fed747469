package domain

import "time"

// Studio represents a photo studio
type Studio struct {
	ID          int64
	Name        string
	Description *string
	ImageURL    *string
	OpeningHour *int // nil = значение по умолчанию
	ClosingHour *int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Hours returns the operating window, falling back to the given defaults
func (s *Studio) Hours(defaultOpening, defaultClosing int) (opening, closing int) {
	opening, closing = defaultOpening, defaultClosing
	if s.OpeningHour != nil {
		opening = *s.OpeningHour
	}
	if s.ClosingHour != nil {
		closing = *s.ClosingHour
	}
	return opening, closing
}

// ValidHour returns true for an hour in [0, 24)
func ValidHour(h int) bool {
	return h >= MinHour && h <= MaxHour
}
