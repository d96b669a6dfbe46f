// Package store defines the persistence contracts for users and URLs.
// Implementations live in the memory and postgres subpackages and must
// provide the same atomicity guarantees: CreateUser is check-and-insert
// on email, CreateURL is check-and-insert on short code.
package store

import (
	"context"
	"errors"

	"github.com/tinyapp/tinyapp/internal/model"
)

// Sentinel errors shared by all store implementations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
	ErrURLNotFound  = errors.New("url not found")
	ErrCodeExists   = errors.New("short code already exists")
)

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user. Returns ErrEmailExists if another
	// user already holds the email (case-sensitive exact match); the
	// existing record is left untouched.
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByID returns the user with the given id or ErrUserNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// GetUserByEmail returns the user with the given email or ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// URLStore persists short URL records keyed by short code.
type URLStore interface {
	// CreateURL inserts a new record. Returns ErrCodeExists if the code
	// is taken; the check and the insert are atomic so concurrent
	// creates can never both claim the same code.
	CreateURL(ctx context.Context, url *model.URL) error

	// GetURL returns the record for the code or ErrURLNotFound.
	GetURL(ctx context.Context, shortCode string) (*model.URL, error)

	// UpdateURL overwrites the record for url.ShortCode.
	// Returns ErrURLNotFound if no record exists.
	UpdateURL(ctx context.Context, url *model.URL) error

	// DeleteURL removes the record. Returns ErrURLNotFound if no record
	// exists, so a second delete of the same code fails.
	DeleteURL(ctx context.Context, shortCode string) error

	// ListURLsByOwner returns all records owned by ownerID, keyed by
	// short code. The result is always non-nil.
	ListURLsByOwner(ctx context.Context, ownerID string) (map[string]*model.URL, error)
}

// Store combines the user and URL stores plus lifecycle hooks, so a
// single backend can serve both tables.
type Store interface {
	UserStore
	URLStore

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
