package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tinyapp/tinyapp/internal/service"
)

// RedirectHandler handles public redirect requests. Redirection is
// deliberately unauthenticated; only an absent code can fail it.
type RedirectHandler struct {
	svc    *service.URLService
	logger *slog.Logger
}

// NewRedirectHandler creates a new RedirectHandler.
func NewRedirectHandler(svc *service.URLService, logger *slog.Logger) *RedirectHandler {
	return &RedirectHandler{
		svc:    svc,
		logger: logger,
	}
}

// Redirect handles GET /u/{code}.
func (h *RedirectHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusNotFound, "URL_NOT_FOUND", "URL not found")
		return
	}

	start := time.Now()

	target, err := h.svc.Resolve(r.Context(), code)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, service.ErrURLNotFound) {
			h.logger.Info("redirect_not_found",
				slog.String("short_code", code),
				slog.Float64("duration_ms", float64(duration.Microseconds())/1000),
			)
			writeError(w, http.StatusNotFound, "URL_NOT_FOUND", "URL not found")
			return
		}

		h.logger.Error("redirect_error",
			slog.String("short_code", code),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("redirect_success",
		slog.String("short_code", code),
		slog.Float64("duration_ms", float64(duration.Microseconds())/1000),
	)

	w.Header().Set("Cache-Control", "private, max-age=0")

	http.Redirect(w, r, target, http.StatusFound)
}
