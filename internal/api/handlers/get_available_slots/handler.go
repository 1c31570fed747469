package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
	"github.com/m04kA/StudioBookingService/internal/domain"
	"github.com/m04kA/StudioBookingService/internal/usecase/ensure_slots"
	getAvailableSlots "github.com/m04kA/StudioBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStudioNotFound  = "студия не найдена"
)

type Handler struct {
	ensureSlots  EnsureSlotsUseCase
	useCase      AvailableSlotsUseCase
	maxDaysAhead int
	now          func() time.Time
	logger       Logger
}

// NewHandler создает обработчик свободных слотов
// Сетка создается при чтении только для дат из [сегодня, сегодня+maxDaysAhead]
func NewHandler(ensureSlots EnsureSlotsUseCase, useCase AvailableSlotsUseCase, maxDaysAhead int, logger Logger) *Handler {
	return &Handler{
		ensureSlots:  ensureSlots,
		useCase:      useCase,
		maxDaysAhead: maxDaysAhead,
		now:          time.Now,
		logger:       logger,
	}
}

func (h *Handler) withinGenerationWindow(date time.Time) bool {
	today := domain.NormalizeDate(h.now().UTC())
	last := today.AddDate(0, 0, h.maxDaysAhead)
	return !date.Before(today) && !date.After(last)
}

// Handle GET /api/v1/studios/{studioId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, err := handlers.PathInt64(r, "studioId")
	if err != nil {
		h.logger.Warn("GET /studios/{id}/available-slots - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /studios/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Каталог на дату создается при первом обращении, чтение свободных слотов ничего не пишет.
	// Даты вне горизонта генерации только читаются.
	if h.withinGenerationWindow(date) {
		if _, err := h.ensureSlots.Execute(r.Context(), &ensure_slots.Request{StudioID: studioID, Date: date}); err != nil {
			if errors.Is(err, ensure_slots.ErrStudioNotFound) {
				h.logger.Warn("GET /studios/{id}/available-slots - Studio not found: studio_id=%d", studioID)
				handlers.RespondNotFound(w, msgStudioNotFound)
				return
			}
			h.logger.Error("GET /studios/{id}/available-slots - Failed to ensure slots: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
			return
		}
	} else {
		h.logger.Info("GET /studios/{id}/available-slots - Date outside generation window, skipping ensure: studio_id=%d, date=%s",
			studioID, dateStr)
	}

	result, err := h.useCase.ListAvailable(r.Context(), &getAvailableSlots.Request{StudioID: studioID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/available-slots - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /studios/{id}/available-slots - Failed to get slots: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /studios/{id}/available-slots - Slots retrieved successfully: studio_id=%d, date=%s, slots_count=%d",
		studioID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
