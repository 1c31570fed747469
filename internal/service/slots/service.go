package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
	slotRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/slot"
	studioRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/studio"
	"github.com/m04kA/StudioBookingService/internal/service/slots/models"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
	"github.com/m04kA/StudioBookingService/pkg/types"
)

// Config ограничения генерации по запросу администратора
type Config struct {
	DefaultDays int
	MaxDays     int
}

// Service административное управление слотами
type Service struct {
	studioRepo    StudioRepository
	slotRepo      SlotRepository
	slotGenerator SlotGenerator
	txManager     TransactionManager
	config        Config
	logger        Logger

	now func() time.Time
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	studioRepo StudioRepository,
	slotRepo SlotRepository,
	slotGenerator SlotGenerator,
	txManager TransactionManager,
	config Config,
	logger Logger,
) *Service {
	return &Service{
		studioRepo:    studioRepo,
		slotRepo:      slotRepo,
		slotGenerator: slotGenerator,
		txManager:     txManager,
		config:        config,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateSlot создает слот произвольной длины
// Под блокировкой студии проверяется, что интервал не пересекается с существующими слотами этой даты
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: studio=%d date=%s %s-%s", req.StudioID, req.Date, req.StartTime, req.EndTime)

	if req.StudioID <= 0 {
		return nil, fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	var created *domain.Slot

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.studioRepo.LockByID(txCtx, req.StudioID); err != nil {
			if errors.Is(err, studioRepo.ErrStudioNotFound) {
				return ErrStudioNotFound
			}
			return fmt.Errorf("%w: CreateSlot - lock studio: %v", ErrInternal, err)
		}

		existing, err := s.slotRepo.ListByStudioAndDate(txCtx, req.StudioID, date, nil)
		if err != nil {
			return fmt.Errorf("%w: CreateSlot - list slots: %v", ErrInternal, err)
		}
		for _, slot := range existing {
			if slot.Overlaps(start, end) {
				s.logger.Warn("CreateSlot: %s-%s overlaps slot id=%d (%s-%s)", start, end, slot.ID, slot.StartTime, slot.EndTime)
				return ErrSlotUnavailable
			}
		}

		created, err = s.slotRepo.Create(txCtx, &domain.Slot{
			StudioID:  req.StudioID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotConflict) {
				return ErrSlotUnavailable
			}
			return fmt.Errorf("%w: CreateSlot - insert slot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("CreateSlot: %v", err)
		}
		return nil, err
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// DeleteSlot удаляет свободный слот
func (s *Service) DeleteSlot(ctx context.Context, id int64) error {
	s.logger.Info("DeleteSlot: deleting slot id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.LockByID(txCtx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: DeleteSlot - lock slot: %v", ErrInternal, err)
		}

		if slot.Held {
			s.logger.Warn("DeleteSlot: slot id=%d is held", id)
			return ErrSlotHeld
		}

		if err := s.slotRepo.Delete(txCtx, id); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrInUse):
				s.logger.Warn("DeleteSlot: slot id=%d is referenced by past bookings", id)
				return ErrInUse
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				return ErrSlotNotFound
			default:
				return fmt.Errorf("%w: DeleteSlot - delete slot: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("DeleteSlot: %v", err)
		}
		return err
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", id)
	return nil
}

// GenerateSlots заполняет сеткой days дней начиная с сегодняшнего
// days = 0 означает значение по умолчанию
func (s *Service) GenerateSlots(ctx context.Context, studioID int64, days int) (*models.GenerateSlotsResponse, error) {
	if days == 0 {
		days = s.config.DefaultDays
	}
	if days < 1 || days > s.config.MaxDays {
		return nil, fmt.Errorf("%w: days must be in [1, %d]", ErrInvalidInput, s.config.MaxDays)
	}

	s.logger.Info("GenerateSlots: studio=%d days=%d", studioID, days)

	resp, err := s.slotGenerator.ExecuteForDays(ctx, &ensure_slots.DaysRequest{
		StudioID:  studioID,
		StartDate: domain.NormalizeDate(s.now()),
		NumDays:   days,
	})
	if err != nil {
		switch {
		case errors.Is(err, ensure_slots.ErrStudioNotFound):
			return nil, ErrStudioNotFound
		case errors.Is(err, ensure_slots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			s.logger.Error("GenerateSlots: failed for studio id=%d: %v", studioID, err)
			return nil, fmt.Errorf("%w: GenerateSlots - %v", ErrInternal, err)
		}
	}

	return &models.GenerateSlotsResponse{
		StudioID:      studioID,
		Days:          days,
		Created:       resp.Created,
		DaysGenerated: resp.DaysGenerated,
		DaysSkipped:   resp.DaysSkipped,
		DaysEmpty:     resp.DaysEmpty,
	}, nil
}
