// Package session stores server-side session tokens.
// A session maps an opaque random token to a user id for its lifetime;
// handlers carry the token in a cookie, the core only ever sees the
// resolved user id.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound indicates the token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// CookieName is the session cookie set by the auth handlers.
const CookieName = "tinyapp_session"

// Store persists session tokens.
type Store interface {
	// Create establishes a session for userID and returns its token.
	Create(ctx context.Context, userID string) (string, error)

	// Resolve returns the user id for a token, or ErrNotFound if the
	// token is unknown or expired.
	Resolve(ctx context.Context, token string) (string, error)

	// Destroy removes the session. Destroying an unknown token is not
	// an error.
	Destroy(ctx context.Context, token string) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// newToken returns a fresh opaque session token.
func newToken() string {
	return uuid.New().String()
}
