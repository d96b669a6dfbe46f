package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tinyapp/tinyapp/internal/handler/dto"
	"github.com/tinyapp/tinyapp/internal/service"
	"github.com/tinyapp/tinyapp/internal/session"
)

// AuthHandler handles registration, login, and logout. Register and
// login establish a session; the services themselves never see tokens.
type AuthHandler struct {
	users      *service.UserService
	sessions   session.Store
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *service.UserService, sessions session.Store, sessionTTL time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if !h.establishSession(w, r, user.ID) {
		return
	}

	h.logger.Info("user_registered",
		slog.String("user_id", user.ID),
		slog.String("request_id", requestID(r)),
	)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if !h.establishSession(w, r, user.ID) {
		return
	}

	h.logger.Info("user_logged_in",
		slog.String("user_id", user.ID),
		slog.String("request_id", requestID(r)),
	)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Logout handles POST /api/v1/auth/logout. Logging out without a live
// session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.logger.Error("failed to destroy session", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
			return
		}
	}

	h.clearCookie(w)

	writeJSON(w, http.StatusOK, map[string]bool{"session_cleared": true})
}

// establishSession creates a session for the user and sets the cookie.
// Returns false after writing an error response on failure.
func (h *AuthHandler) establishSession(w http.ResponseWriter, r *http.Request, userID string) bool {
	token, err := h.sessions.Create(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to create session", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return true
}

// clearCookie expires the session cookie on the client.
func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
