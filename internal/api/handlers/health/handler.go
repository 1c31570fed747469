package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/StudioBookingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	db     Pinger
	logger Logger
}

// NewHandler db может быть nil для хранилища в памяти
func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

type response struct {
	Status string `json:"status"`
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Error("GET /health - Database ping failed: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, response{Status: "unavailable"})
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response{Status: "ok"})
}
