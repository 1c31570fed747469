package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioBookingService/internal/domain"
	bookingRepo "github.com/m04kA/StudioBookingService/internal/infra/storage/booking"
	"github.com/m04kA/StudioBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger

	// strictTransitions включает проверку графа переходов статусов
	strictTransitions bool
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	metrics Metrics,
	strictTransitions bool,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:       bookingRepo,
		slotRepo:          slotRepo,
		txManager:         txManager,
		metrics:           metrics,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор любое
func (s *Service) GetByID(ctx context.Context, id int64, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, caller.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !caller.IsAdmin && !booking.IsOwnedBy(caller.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, новые первыми
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, ErrInvalidStatus
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListBookings административный список бронирований с фильтрами по студии, статусу и дате слота
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching bookings by admin filter")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		if errors.Is(err, domain.ErrInvalidStatus) {
			return nil, ErrInvalidStatus
		}
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает слот в одной транзакции
// Повторная отмена возвращает ErrAlreadyCancelled
func (s *Service) Cancel(ctx context.Context, bookingID int64, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, caller.UserID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.lockBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if !caller.IsAdmin && !booking.IsOwnedBy(caller.UserID) {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", caller.UserID, bookingID)
			return ErrAccessDenied
		}

		if booking.IsCancelled() {
			s.logger.Warn("Cancel: booking id=%d is already cancelled", bookingID)
			return ErrAlreadyCancelled
		}

		if s.strictTransitions && !booking.Status.CanTransitionTo(domain.StatusCancelled) {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrInvalidTransition
		}

		if err := s.cancel(txCtx, "Cancel", booking); err != nil {
			return err
		}

		result, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: Cancel - reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncBookingsCancelled()
	}
	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// UpdateStatus обновляет статус бронирования (администратор)
// Переход в cancelled освобождает слот в той же транзакции, остальные переходы слот не трогают
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	var (
		result    *domain.Booking
		cancelled bool
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.lockBooking(txCtx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		// Отмененное бронирование уже освободило слот, вернуть его можно только новым бронированием
		if booking.IsCancelled() {
			if newStatus == domain.StatusCancelled {
				return ErrAlreadyCancelled
			}
			s.logger.Warn("UpdateStatus: booking id=%d is cancelled, transition to %s rejected", bookingID, newStatus)
			return ErrInvalidTransition
		}

		if booking.Status == newStatus {
			result = booking
			return nil
		}

		if s.strictTransitions && !booking.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d", booking.Status, newStatus, bookingID)
			return ErrInvalidTransition
		}

		if newStatus == domain.StatusCancelled {
			if err := s.cancel(txCtx, "UpdateStatus", booking); err != nil {
				return err
			}
			cancelled = true
		} else if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		result, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cancelled && s.metrics != nil {
		s.metrics.IncBookingsCancelled()
	}
	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// Вспомогательные методы

func (s *Service) lockBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.LockByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: failed to lock booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// cancel переводит бронирование в cancelled и снимает held со слота
func (s *Service) cancel(ctx context.Context, op string, booking *domain.Booking) error {
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
		s.logger.Error("%s: failed to cancel booking id=%d: %v", op, booking.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.slotRepo.SetHeld(ctx, booking.SlotID, false); err != nil {
		s.logger.Error("%s: failed to release slot id=%d: %v", op, booking.SlotID, err)
		return fmt.Errorf("%w: %s - release slot: %v", ErrInternal, op, err)
	}

	return nil
}
