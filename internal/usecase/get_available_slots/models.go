package get_available_slots

import (
	"time"

	"github.com/m04kA/StudioBookingService/pkg/types"
)

// Request модель запроса слотов студии на дату
type Request struct {
	StudioID int64
	Date     time.Time
}

// Response модель ответа со слотами
type Response struct {
	StudioID int64
	Date     time.Time
	Slots    []Slot // Отсортированы по времени начала
}

// Slot слот в ответе
type Slot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Held      bool
}
