package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/tinyapp/tinyapp/internal/model"
	"github.com/tinyapp/tinyapp/internal/store"
)

func newTestUser(id, email string) *model.User {
	return &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now().UTC(),
	}
}

func newTestURL(code, longURL, ownerID string) *model.URL {
	now := time.Now().UTC()
	return &model.URL{
		ShortCode: code,
		LongURL:   longURL,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	original := newTestUser("u1", "alice@example.com")
	if err := s.CreateUser(ctx, original); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	err := s.CreateUser(ctx, newTestUser("u2", "alice@example.com"))
	if !errors.Is(err, store.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// The original record must be untouched.
	got, err := s.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("duplicate register clobbered the original user: got id %q", got.ID)
	}
}

func TestGetUserByEmail_CaseSensitive(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.CreateUser(ctx, newTestUser("u1", "Alice@example.com")); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if _, err := s.GetUserByEmail(ctx, "alice@example.com"); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("email lookup should be case-sensitive, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.GetUserByEmail(ctx, "missing@example.com"); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateURL_DuplicateCode(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.CreateURL(ctx, newTestURL("b2xVn2", "http://example.org", "u1")); err != nil {
		t.Fatalf("CreateURL failed: %v", err)
	}

	err := s.CreateURL(ctx, newTestURL("b2xVn2", "http://example.net", "u2"))
	if !errors.Is(err, store.ErrCodeExists) {
		t.Fatalf("expected ErrCodeExists, got %v", err)
	}

	got, err := s.GetURL(ctx, "b2xVn2")
	if err != nil {
		t.Fatalf("GetURL failed: %v", err)
	}
	if got.LongURL != "http://example.org" || got.OwnerID != "u1" {
		t.Errorf("collision overwrote the original record: %+v", got)
	}
}

func TestUpdateURL(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.UpdateURL(ctx, newTestURL("nope", "http://example.org", "u1")); !errors.Is(err, store.ErrURLNotFound) {
		t.Fatalf("expected ErrURLNotFound for absent code, got %v", err)
	}

	if err := s.CreateURL(ctx, newTestURL("9sm5xK", "http://example.org", "u1")); err != nil {
		t.Fatalf("CreateURL failed: %v", err)
	}

	updated := newTestURL("9sm5xK", "http://example.net", "u1")
	if err := s.UpdateURL(ctx, updated); err != nil {
		t.Fatalf("UpdateURL failed: %v", err)
	}

	got, err := s.GetURL(ctx, "9sm5xK")
	if err != nil {
		t.Fatalf("GetURL failed: %v", err)
	}
	if got.LongURL != "http://example.net" {
		t.Errorf("expected updated long URL, got %q", got.LongURL)
	}
}

func TestDeleteURL_Twice(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.CreateURL(ctx, newTestURL("abc123", "http://example.org", "u1")); err != nil {
		t.Fatalf("CreateURL failed: %v", err)
	}

	if err := s.DeleteURL(ctx, "abc123"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := s.DeleteURL(ctx, "abc123"); !errors.Is(err, store.ErrURLNotFound) {
		t.Errorf("second delete should return ErrURLNotFound, got %v", err)
	}
}

func TestListURLsByOwner_Filters(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	for i, owner := range []string{"alice", "alice", "bob"} {
		url := newTestURL(fmt.Sprintf("code%d", i), "http://example.org", owner)
		if err := s.CreateURL(ctx, url); err != nil {
			t.Fatalf("CreateURL failed: %v", err)
		}
	}

	urls, err := s.ListURLsByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListURLsByOwner failed: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls for alice, got %d", len(urls))
	}
	for code, u := range urls {
		if u.OwnerID != "alice" {
			t.Errorf("url %s belongs to %s, expected alice", code, u.OwnerID)
		}
	}

	empty, err := s.ListURLsByOwner(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListURLsByOwner failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty listing for unknown owner, got %d entries", len(empty))
	}
}

func TestGetURL_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	if err := s.CreateURL(ctx, newTestURL("abc123", "http://example.org", "u1")); err != nil {
		t.Fatalf("CreateURL failed: %v", err)
	}

	got, _ := s.GetURL(ctx, "abc123")
	got.LongURL = "http://mutated.example"

	again, _ := s.GetURL(ctx, "abc123")
	if again.LongURL != "http://example.org" {
		t.Error("mutating a returned record must not affect stored state")
	}
}

func TestCreateURL_ConcurrentSameCode(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.CreateURL(ctx, newTestURL("race01", "http://example.org", fmt.Sprintf("u%d", i)))
		}(i)
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, store.ErrCodeExists):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if won != 1 {
		t.Errorf("exactly one concurrent create should win, got %d", won)
	}
	if lost != workers-1 {
		t.Errorf("expected %d losers, got %d", workers-1, lost)
	}
}
