package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tinyapp/tinyapp/internal/auth"
	"github.com/tinyapp/tinyapp/internal/handler/dto"
	"github.com/tinyapp/tinyapp/internal/service"
)

// URLHandler handles HTTP requests for URL management. Every endpoint
// passes the session-resolved user id into the service, which enforces
// the authorization policy.
type URLHandler struct {
	svc     *service.URLService
	baseURL string
	logger  *slog.Logger
}

// NewURLHandler creates a new URLHandler.
func NewURLHandler(svc *service.URLService, baseURL string, logger *slog.Logger) *URLHandler {
	return &URLHandler{
		svc:     svc,
		baseURL: baseURL,
		logger:  logger,
	}
}

// List handles GET /api/v1/urls.
func (h *URLHandler) List(w http.ResponseWriter, r *http.Request) {
	urls, err := h.svc.ListForOwner(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToURLListResponse(urls, h.baseURL))
}

// Create handles POST /api/v1/urls.
func (h *URLHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	url, err := h.svc.Create(r.Context(), auth.UserIDFromContext(r.Context()), req.LongURL)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("url_created",
		slog.String("short_code", url.ShortCode),
		slog.String("owner_id", url.OwnerID),
		slog.String("request_id", requestID(r)),
	)

	writeJSON(w, http.StatusCreated, dto.ToURLResponse(url, h.baseURL))
}

// Get handles GET /api/v1/urls/{code}.
func (h *URLHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	url, err := h.svc.Get(r.Context(), auth.UserIDFromContext(r.Context()), code)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToURLResponse(url, h.baseURL))
}

// Update handles PATCH /api/v1/urls/{code}.
func (h *URLHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req dto.UpdateURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	url, err := h.svc.Update(r.Context(), auth.UserIDFromContext(r.Context()), code, req.LongURL)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("url_updated",
		slog.String("short_code", url.ShortCode),
		slog.String("request_id", requestID(r)),
	)

	writeJSON(w, http.StatusOK, dto.ToURLResponse(url, h.baseURL))
}

// Delete handles DELETE /api/v1/urls/{code}.
func (h *URLHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.svc.Delete(r.Context(), auth.UserIDFromContext(r.Context()), code); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("url_deleted",
		slog.String("short_code", code),
		slog.String("request_id", requestID(r)),
	)

	w.WriteHeader(http.StatusNoContent)
}
