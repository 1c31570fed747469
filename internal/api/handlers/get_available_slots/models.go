package get_available_slots

import (
	"github.com/m04kA/StudioBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/StudioBookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Held      bool   `json:"held"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	StudioID int64          `json:"studioId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	result := &SlotsResponse{
		StudioID: resp.StudioID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Held:      slot.Held,
		})
	}

	return result
}
