package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/pkg/ptr"
)

// UseCase use case выборки слотов студии на дату
// Ничего не пишет: если сетка на дату пуста, её заранее создает ensure_slots
type UseCase struct {
	studioRepo StudioRepository
	slotRepo   SlotRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(studioRepo StudioRepository, slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		studioRepo: studioRepo,
		slotRepo:   slotRepo,
		logger:     logger,
	}
}

// ListAvailable возвращает свободные слоты (held = false)
func (uc *UseCase) ListAvailable(ctx context.Context, req *Request) (*Response, error) {
	return uc.list(ctx, "ListAvailable", req, false)
}

// ListHeld возвращает занятые слоты (для административных экранов)
func (uc *UseCase) ListHeld(ctx context.Context, req *Request) (*Response, error) {
	return uc.list(ctx, "ListHeld", req, true)
}

func (uc *UseCase) list(ctx context.Context, op string, req *Request, held bool) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("%s: validation failed: %v", op, err)
		return nil, err
	}

	date := domain.NormalizeDate(req.Date)

	if _, err := uc.studioRepo.GetByID(ctx, req.StudioID); err != nil {
		if errors.Is(err, domain.ErrStudioNotFound) {
			uc.logger.Warn("%s: studio id=%d not found", op, req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("%s: failed to get studio id=%d: %v", op, req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	slots, err := uc.slotRepo.ListByStudioAndDate(ctx, req.StudioID, date, ptr.Ptr(held))
	if err != nil {
		uc.logger.Error("%s: failed to list slots for studio=%d date=%s: %v",
			op, req.StudioID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	resp := &Response{
		StudioID: req.StudioID,
		Date:     date,
		Slots:    make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		// Ответ содержит только слоты с запрошенным флагом held
		if s.Held != held {
			continue
		}
		resp.Slots = append(resp.Slots, Slot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Held:      s.Held,
		})
	}

	uc.logger.Info("%s: studio=%d date=%s slots=%d", op, req.StudioID, date.Format(domain.DateFormat), len(resp.Slots))
	return resp, nil
}
