// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that can own short URLs.
// Users are immutable after registration; there is no update or
// delete path for them.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
