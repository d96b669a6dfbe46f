// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tinyapp/tinyapp/internal/handler/dto"
	"github.com/tinyapp/tinyapp/internal/middleware"
	"github.com/tinyapp/tinyapp/internal/service"
)

// Handler provides shared endpoints not tied to a specific resource.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is the root info endpoint.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Hello from TinyApp!",
		"version": "1.0.0",
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// requestID returns the request id injected by the middleware.
func requestID(r *http.Request) string {
	return middleware.GetRequestID(r.Context())
}

// writeServiceError maps service errors to HTTP responses. Unmapped
// errors are logged and reported as 500s without leaking detail.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email, password, and URL fields must not be empty")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "This account already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusForbidden, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You do not own this URL")
	case errors.Is(err, service.ErrURLNotFound):
		writeError(w, http.StatusNotFound, "URL_NOT_FOUND", "URL not found")
	default:
		logger.Error("internal_error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
