package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tinyapp/tinyapp/internal/metrics"
	"github.com/tinyapp/tinyapp/internal/model"
	"github.com/tinyapp/tinyapp/internal/shortcode"
	"github.com/tinyapp/tinyapp/internal/store"
)

// maxCodeRetries bounds the collision retry loop. With a 62^6 code space
// the loop terminates on the first draw in practice; the cap exists so
// termination is provable.
const maxCodeRetries = 12

// URLService owns the short URL registry and enforces the authorization
// policy on every operation. requesterID is the session-resolved user id;
// empty string means anonymous. Checks always run in the same order:
// authentication, then existence, then ownership, so anonymous callers
// never learn whether a code exists.
type URLService struct {
	urls       store.URLStore
	codeLength int
	metrics    metrics.Recorder
}

// NewURLService creates a new URLService.
func NewURLService(urls store.URLStore, codeLength int, recorder metrics.Recorder) *URLService {
	if codeLength <= 0 {
		codeLength = shortcode.DefaultLength
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &URLService{
		urls:       urls,
		codeLength: codeLength,
		metrics:    recorder,
	}
}

// Create shortens a long URL for the requester. Fails with
// ErrUnauthenticated for anonymous requests and ErrValidation for an
// empty long URL.
func (s *URLService) Create(ctx context.Context, requesterID, longURL string) (*model.URL, error) {
	if requesterID == "" {
		return nil, ErrUnauthenticated
	}
	if longURL == "" {
		return nil, ErrValidation
	}

	now := time.Now().UTC()
	url := &model.URL{
		LongURL:   longURL,
		OwnerID:   requesterID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Draw codes until the store accepts one. The store's
	// check-and-insert is atomic, so two concurrent creates can never
	// both claim the same code.
	for i := 0; i < maxCodeRetries; i++ {
		url.ShortCode = shortcode.Generate(s.codeLength)

		err := s.urls.CreateURL(ctx, url)
		if err == nil {
			s.metrics.IncURLCreated()
			return url, nil
		}
		if !errors.Is(err, store.ErrCodeExists) {
			return nil, fmt.Errorf("failed to create url: %w", err)
		}
	}

	return nil, fmt.Errorf("failed to generate unique short code after %d attempts", maxCodeRetries)
}

// Get returns one record for its owner.
func (s *URLService) Get(ctx context.Context, requesterID, shortCode string) (*model.URL, error) {
	if requesterID == "" {
		return nil, ErrUnauthenticated
	}

	url, err := s.urls.GetURL(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrURLNotFound) {
			return nil, ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to get url: %w", err)
	}

	if url.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	return url, nil
}

// Update replaces the long URL of a record the requester owns.
func (s *URLService) Update(ctx context.Context, requesterID, shortCode, newLongURL string) (*model.URL, error) {
	if requesterID == "" {
		return nil, ErrUnauthenticated
	}
	if newLongURL == "" {
		return nil, ErrValidation
	}

	url, err := s.urls.GetURL(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrURLNotFound) {
			return nil, ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to get url: %w", err)
	}

	if url.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	url.LongURL = newLongURL
	url.UpdatedAt = time.Now().UTC()

	if err := s.urls.UpdateURL(ctx, url); err != nil {
		if errors.Is(err, store.ErrURLNotFound) {
			return nil, ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to update url: %w", err)
	}

	s.metrics.IncURLUpdated()

	return url, nil
}

// Delete removes a record the requester owns. A second delete of the
// same code yields ErrURLNotFound.
func (s *URLService) Delete(ctx context.Context, requesterID, shortCode string) error {
	if requesterID == "" {
		return ErrUnauthenticated
	}

	url, err := s.urls.GetURL(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrURLNotFound) {
			return ErrURLNotFound
		}
		return fmt.Errorf("failed to get url: %w", err)
	}

	if url.OwnerID != requesterID {
		return ErrForbidden
	}

	if err := s.urls.DeleteURL(ctx, shortCode); err != nil {
		if errors.Is(err, store.ErrURLNotFound) {
			return ErrURLNotFound
		}
		return fmt.Errorf("failed to delete url: %w", err)
	}

	s.metrics.IncURLDeleted()

	return nil
}

// ListForOwner returns the requester's records keyed by short code.
func (s *URLService) ListForOwner(ctx context.Context, requesterID string) (map[string]*model.URL, error) {
	if requesterID == "" {
		return nil, ErrUnauthenticated
	}

	urls, err := s.urls.ListURLsByOwner(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}

	return urls, nil
}

// Resolve is the public redirect lookup. It does not check ownership and
// fails only with ErrURLNotFound. The returned URL always carries a
// scheme, defaulting to http:// when the stored value has none.
func (s *URLService) Resolve(ctx context.Context, shortCode string) (string, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRedirectDuration(time.Since(start))
	}()

	url, err := s.urls.GetURL(ctx, shortCode)
	if err != nil {
		if errors.Is(err, store.ErrURLNotFound) {
			s.metrics.IncRedirectNotFound()
			return "", ErrURLNotFound
		}
		return "", fmt.Errorf("failed to resolve url: %w", err)
	}

	s.metrics.IncRedirect()

	return normalizeLongURL(url.LongURL), nil
}

// normalizeLongURL prefixes a default scheme so redirect targets like
// "example.org" do not resolve relative to this host.
func normalizeLongURL(longURL string) string {
	if strings.HasPrefix(longURL, "http://") || strings.HasPrefix(longURL, "https://") {
		return longURL
	}
	return "http://" + longURL
}
