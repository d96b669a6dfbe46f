package auth

import (
	"context"
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// bcrypt modular crypt format: $2a$10$<salt+digest>
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("hash should carry cost 10 in bcrypt format, got: %s", hash)
	}
}

func TestHashPassword_Uniqueness(t *testing.T) {
	t.Parallel()

	password := "the_same_password_12345"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// Same password should produce different hashes (different salts)
	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to random salt")
	}

	if !VerifyPassword(password, hash1) || !VerifyPassword(password, hash2) {
		t.Error("both hashes should verify correctly")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("correct password should verify")
	}
	if VerifyPassword("wrong password", hash) {
		t.Error("wrong password should not verify")
	}
	if VerifyPassword("correct horse battery staple", "not-a-bcrypt-hash") {
		t.Error("malformed hash should not verify")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	// bcrypt rejects inputs over 72 bytes.
	_, err := HashPassword(strings.Repeat("x", 80))
	if err == nil {
		t.Error("expected error for password over 72 bytes")
	}
}

func TestUserIDContext_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithUserID(context.Background(), "01HV5E8ZJ3")
	if got := UserIDFromContext(ctx); got != "01HV5E8ZJ3" {
		t.Errorf("expected user id round trip, got %q", got)
	}

	if got := UserIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty user id for bare context, got %q", got)
	}
}
