// Package shortcode generates random short codes for URLs.
package shortcode

import (
	"crypto/rand"
	"math/big"
)

// alphabet is the 62-symbol code alphabet: upper, lower, digits.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength is the standard short-code length.
const DefaultLength = 6

// Generate returns a random code of the given length, each character an
// independent uniform draw from the alphabet. Codes are not guaranteed
// unique; callers retry on collision against their store.
func Generate(length int) string {
	if length <= 0 {
		length = DefaultLength
	}
	b := make([]byte, length)
	for i := range b {
		idx, err := cryptoRandInt(len(alphabet))
		if err != nil {
			// Fallback (should never happen in practice)
			idx = 0
		}
		b[i] = alphabet[idx]
	}
	return string(b)
}

// cryptoRandInt returns a cryptographically secure random integer in [0, max).
func cryptoRandInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
