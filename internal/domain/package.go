package domain

import "time"

// Package represents a studio service package (price and session duration)
type Package struct {
	ID              int64
	StudioID        int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
