package shortcode

import (
	"strings"
	"testing"
)

func TestGenerate_Length(t *testing.T) {
	t.Parallel()

	for _, length := range []int{1, 6, 12, 50} {
		code := Generate(length)
		if len(code) != length {
			t.Errorf("Generate(%d) returned %d characters: %q", length, len(code), code)
		}
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{0, -3} {
		code := Generate(length)
		if len(code) != DefaultLength {
			t.Errorf("Generate(%d) should fall back to default length, got %q", length, code)
		}
	}
}

func TestGenerate_Alphabet(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code := Generate(DefaultLength)
		for _, c := range code {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("code %q contains character %q outside the alphabet", code, c)
			}
		}
	}
}

func TestGenerate_Dispersion(t *testing.T) {
	t.Parallel()

	// 1000 draws from a 62^6 space should never collide; a duplicate
	// here indicates a broken entropy source.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := Generate(DefaultLength)
		if seen[code] {
			t.Fatalf("duplicate code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}
