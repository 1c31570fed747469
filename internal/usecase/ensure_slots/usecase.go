package ensure_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// UseCase use case материализации слотов студии
type UseCase struct {
	studioRepo StudioRepository
	slotRepo   SlotRepository
	txManager  TransactionManager
	metrics    Metrics
	config     Config
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studioRepo StudioRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	metrics Metrics,
	config Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		studioRepo: studioRepo,
		slotRepo:   slotRepo,
		txManager:  txManager,
		metrics:    metrics,
		config:     config,
		logger:     logger,
	}
}

// Execute создает сетку слотов на дату, если на эту дату нет ни одного слота
// Вставка всей сетки выполняется одной транзакцией: либо все слоты, либо ни одного
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EnsureSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.NormalizeDate(req.Date)
	resp := &Response{StudioID: req.StudioID, Date: date}

	// Дата уже заполнена: без транзакции и без блокировки студии
	existing, err := uc.slotRepo.CountByStudioAndDate(ctx, req.StudioID, date)
	if err != nil {
		uc.logger.Error("EnsureSlots: studio=%d date=%s: failed to count slots: %v",
			req.StudioID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to count slots: %v", ErrInternal, err)
	}
	if existing > 0 {
		resp.Skipped = true
		return resp, nil
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем студию: параллельные генераторы для нее ждут здесь
		studio, err := uc.studioRepo.LockByID(txCtx, req.StudioID)
		if err != nil {
			if errors.Is(err, domain.ErrStudioNotFound) {
				return ErrStudioNotFound
			}
			return fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
		}

		// 2. Повторная проверка под блокировкой: сетку мог создать конкурент
		count, err := uc.slotRepo.CountByStudioAndDate(txCtx, req.StudioID, date)
		if err != nil {
			return fmt.Errorf("%w: failed to count slots: %v", ErrInternal, err)
		}
		if count > 0 {
			resp.Skipped = true
			return nil
		}

		// 3. Строим почасовую сетку по часам работы
		opening, closing := studio.Hours(uc.config.DefaultOpeningHour, uc.config.DefaultClosingHour)
		slots, err := buildGrid(studio.ID, date, opening, closing)
		if err != nil {
			return fmt.Errorf("%w: failed to build grid: %v", ErrInternal, err)
		}
		if len(slots) == 0 {
			uc.logger.Info("EnsureSlots: studio=%d has empty window %d-%d, nothing to generate",
				studio.ID, opening, closing)
			resp.EmptyWindow = true
			return nil
		}

		// 4. Вставляем сетку; уникальный индекс (studio_id, date, start_time) страхует от дублей
		if err := uc.slotRepo.CreateBatch(txCtx, slots); err != nil {
			if errors.Is(err, domain.ErrSlotUnavailable) {
				return errAlreadyGenerated
			}
			return fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
		}

		resp.Created = len(slots)
		return nil
	})

	if errors.Is(err, errAlreadyGenerated) {
		uc.logger.Warn("EnsureSlots: studio=%d date=%s generated by a concurrent call",
			req.StudioID, date.Format(domain.DateFormat))
		return &Response{StudioID: req.StudioID, Date: date, Skipped: true}, nil
	}
	if err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			uc.logger.Warn("EnsureSlots: studio id=%d not found", req.StudioID)
		} else {
			uc.logger.Error("EnsureSlots: studio=%d date=%s: %v", req.StudioID, date.Format(domain.DateFormat), err)
		}
		return nil, err
	}

	if resp.Created > 0 {
		if uc.metrics != nil {
			uc.metrics.AddSlotsGenerated(resp.Created)
		}
		uc.logger.Info("EnsureSlots: created %d slots for studio=%d date=%s",
			resp.Created, req.StudioID, date.Format(domain.DateFormat))
	}

	return resp, nil
}

// ExecuteForDays применяет Execute к каждому дню начиная со StartDate
// Дни, где слоты уже есть, пропускаются. Каждый день генерируется в своей транзакции.
func (uc *UseCase) ExecuteForDays(ctx context.Context, req *DaysRequest) (*DaysResponse, error) {
	if err := validateDaysRequest(req); err != nil {
		uc.logger.Warn("EnsureSlotsForDays: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("EnsureSlotsForDays: studio=%d from=%s days=%d",
		req.StudioID, req.StartDate.Format(domain.DateFormat), req.NumDays)

	result := &DaysResponse{StudioID: req.StudioID}
	start := domain.NormalizeDate(req.StartDate)

	for i := 0; i < req.NumDays; i++ {
		day, err := uc.Execute(ctx, &Request{StudioID: req.StudioID, Date: start.AddDate(0, 0, i)})
		if err != nil {
			return result, err
		}

		if day.Skipped {
			result.DaysSkipped++
			continue
		}
		if day.EmptyWindow {
			result.DaysEmpty++
			continue
		}
		result.Created += day.Created
		result.DaysGenerated++
	}

	uc.logger.Info("EnsureSlotsForDays: studio=%d created=%d generated_days=%d skipped_days=%d empty_days=%d",
		req.StudioID, result.Created, result.DaysGenerated, result.DaysSkipped, result.DaysEmpty)

	return result, nil
}
