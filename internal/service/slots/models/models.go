package models

import (
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// CreateSlotRequest запрос на ручное создание слота
type CreateSlotRequest struct {
	StudioID  int64  `json:"studioId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
}

// GenerateSlotsResponse результат генерации горизонта
type GenerateSlotsResponse struct {
	StudioID      int64 `json:"studioId"`
	Days          int   `json:"days"`
	Created       int   `json:"created"`
	DaysGenerated int   `json:"daysGenerated"`
	DaysSkipped   int   `json:"daysSkipped"`
	DaysEmpty     int   `json:"daysEmpty"` // Пустое окно работы, слоты не создавались
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        int64     `json:"id"`
	StudioID  int64     `json:"studioId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Held      bool      `json:"held"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:        s.ID,
		StudioID:  s.StudioID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Held:      s.Held,
		CreatedAt: s.CreatedAt,
	}
}
