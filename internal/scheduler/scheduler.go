package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
)

// StudioLister источник активных студий
type StudioLister interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Studio, error)
}

// SlotGenerator генерация сетки слотов на несколько дней
type SlotGenerator interface {
	ExecuteForDays(ctx context.Context, req *ensure_slots.DaysRequest) (*ensure_slots.DaysResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler поддерживает скользящий горизонт слотов для всех активных студий
type Scheduler struct {
	studios     StudioLister
	generator   SlotGenerator
	interval    time.Duration
	horizonDays int
	logger      Logger

	now func() time.Time
}

func New(
	studios StudioLister,
	generator SlotGenerator,
	interval time.Duration,
	horizonDays int,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		studios:     studios,
		generator:   generator,
		interval:    interval,
		horizonDays: horizonDays,
		logger:      logger,
		now:         time.Now,
	}
}

// Start блокирует до отмены ctx. Первый проход выполняется сразу.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Scheduler: started, interval=%s, horizon=%d days", s.interval, s.horizonDays)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler: stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick обходит все активные студии; ошибка по одной студии не прерывает обход
func (s *Scheduler) tick(ctx context.Context) {
	studios, err := s.studios.List(ctx, true)
	if err != nil {
		s.logger.Error("Scheduler: failed to list studios: %v", err)
		return
	}

	today := domain.NormalizeDate(s.now())
	total := 0

	for _, studio := range studios {
		if ctx.Err() != nil {
			return
		}

		resp, err := s.generator.ExecuteForDays(ctx, &ensure_slots.DaysRequest{
			StudioID:  studio.ID,
			StartDate: today,
			NumDays:   s.horizonDays,
		})
		if err != nil {
			s.logger.Error("Scheduler: failed to refresh slots for studio id=%d: %v", studio.ID, err)
			continue
		}
		total += resp.Created
	}

	s.logger.Info("Scheduler: refreshed %d studios, created %d slots", len(studios), total)
}
