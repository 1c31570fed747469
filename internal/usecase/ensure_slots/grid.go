package ensure_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/pkg/types"
)

// buildGrid строит почасовую сетку [h:00, h+1:00) для h в [opening, closing)
// closing <= opening дает пустую сетку
func buildGrid(studioID int64, date time.Time, opening, closing int) ([]*domain.Slot, error) {
	if closing <= opening {
		return nil, nil
	}

	date = domain.NormalizeDate(date)
	slots := make([]*domain.Slot, 0, closing-opening)

	for h := opening; h < closing; h++ {
		start, err := types.FromHour(h)
		if err != nil {
			return nil, fmt.Errorf("start hour %d: %w", h, err)
		}
		end, err := start.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("end of hour %d: %w", h, err)
		}

		slots = append(slots, &domain.Slot{
			StudioID:  studioID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Held:      false,
		})
	}

	return slots, nil
}
