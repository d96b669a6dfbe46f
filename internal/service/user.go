package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tinyapp/tinyapp/internal/auth"
	"github.com/tinyapp/tinyapp/internal/metrics"
	"github.com/tinyapp/tinyapp/internal/model"
	"github.com/tinyapp/tinyapp/internal/store"
)

// UserService handles account registration and authentication.
type UserService struct {
	users   store.UserStore
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		users:   users,
		metrics: recorder,
	}
}

// Register creates a new account. Fails with ErrValidation when email or
// password is empty and ErrEmailTaken when the email is already
// registered; the existing record is never touched.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Authenticate checks credentials against the directory. Unknown email
// and wrong password both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.metrics.IncLoginAttempt("failed")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.metrics.IncLoginAttempt("failed")
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncLoginAttempt("success")

	return user, nil
}

// GetUser returns the user with the given id, or nil when it does not exist.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
