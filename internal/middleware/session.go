package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tinyapp/tinyapp/internal/auth"
	"github.com/tinyapp/tinyapp/internal/session"
)

// Session returns a middleware that resolves the session cookie to a
// user id and stores it in the request context. Requests without a
// cookie, or with a token the store does not recognize, proceed as
// anonymous; the services decide what anonymous callers may do.
func Session(sessions session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					logger.Error("session resolution failed",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.String("error", err.Error()),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
