package domain

import (
	"time"

	"github.com/m04kA/StudioBookingService/pkg/types"
)

// Slot represents a bookable time range of a studio on a date
type Slot struct {
	ID        int64
	StudioID  int64
	Date      time.Time // Полночь UTC
	StartTime types.TimeString
	EndTime   types.TimeString
	Held      bool // Слот занят активным бронированием
	CreatedAt time.Time
}

// Overlaps returns true if [start, end) ranges of the slots intersect on the same date
func (s *Slot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && s.EndTime.IsAfter(start)
}

// NormalizeDate truncates t to midnight UTC keeping its calendar date
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}
