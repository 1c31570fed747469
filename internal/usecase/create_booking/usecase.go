package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	packageRepo PackageRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	packageRepo PackageRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		packageRepo: packageRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Всё выполняется в одной транзакции READ COMMITTED с блокировкой строки слота (FOR UPDATE).
// Конкурирующие запросы на тот же слот ждут блокировку, затем видят held = true
// и получают ErrSlotUnavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, package=%d, slot=%d", req.UserID, req.PackageID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Блокируем и перечитываем слот
		slot, err := uc.slotRepo.LockByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, domain.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		// 3. Повторная проверка доступности обязательна: слот мог быть занят после выдачи списка
		if slot.Held {
			uc.logger.Warn("CreateBooking: slot id=%d is already held", req.SlotID)
			return ErrSlotUnavailable
		}

		// 4. Получаем пакет и фиксируем его цену
		pkg, err := uc.packageRepo.GetByID(txCtx, req.PackageID)
		if err != nil {
			if errors.Is(err, domain.ErrPackageNotFound) {
				uc.logger.Warn("CreateBooking: package id=%d not found", req.PackageID)
				return ErrPackageNotFound
			}
			uc.logger.Error("CreateBooking: failed to get package id=%d: %v", req.PackageID, err)
			return fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}

		if pkg.StudioID != slot.StudioID {
			uc.logger.Warn("CreateBooking: package id=%d (studio=%d) does not match slot id=%d (studio=%d)",
				pkg.ID, pkg.StudioID, slot.ID, slot.StudioID)
			return ErrPackageStudioMismatch
		}

		// 5. Создаем бронирование со статусом pending
		booking := &domain.Booking{
			UserID:     req.UserID,
			StudioID:   slot.StudioID,
			PackageID:  pkg.ID,
			SlotID:     slot.ID,
			Status:     domain.StatusPending,
			TotalPrice: pkg.Price,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, domain.ErrSlotUnavailable) {
				uc.logger.Warn("CreateBooking: active booking for slot id=%d already exists", req.SlotID)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6. Помечаем слот занятым
		if err := uc.slotRepo.SetHeld(txCtx, slot.ID, true); err != nil {
			uc.logger.Error("CreateBooking: failed to hold slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to hold slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) && uc.metrics != nil {
			uc.metrics.IncBookingConflicts()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated()
	}
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		StudioID:   result.StudioID,
		PackageID:  result.PackageID,
		SlotID:     result.SlotID,
		Status:     string(result.Status),
		TotalPrice: result.TotalPrice,
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
