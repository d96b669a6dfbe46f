package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestEndToEnd walks the whole lifecycle through the router: register,
// login, shorten, redirect, update by the owner, update blocked for
// another account.
func TestEndToEnd(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	// Register alice.
	registerUser(t, router, "alice@example.com", "secret1")

	// Log in again; the returned session drives the rest of the flow.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	alice := sessionCookie(t, rec)

	// Shorten a URL without a scheme.
	code := createShortURL(t, router, alice, "example.org")

	// The public redirect normalizes the scheme.
	req = httptest.NewRequest(http.MethodGet, "/u/"+code, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("redirect returned %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "http://example.org" {
		t.Fatalf("expected redirect to http://example.org, got %q", loc)
	}

	// Alice updates her URL.
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/urls/"+code,
		strings.NewReader(`{"long_url":"example.net"}`))
	req.AddCookie(alice)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner update returned %d: %s", rec.Code, rec.Body.String())
	}

	// Bob cannot touch alice's URL.
	bob := registerUser(t, router, "bob@example.com", "hunter2")
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/urls/"+code,
		strings.NewReader(`{"long_url":"http://bob.example"}`))
	req.AddCookie(bob)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner update returned %d, want 403", rec.Code)
	}

	// The redirect now follows alice's update, not bob's attempt.
	req = httptest.NewRequest(http.MethodGet, "/u/"+code, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if loc := rec.Header().Get("Location"); loc != "http://example.net" {
		t.Fatalf("expected redirect to http://example.net, got %q", loc)
	}
}
