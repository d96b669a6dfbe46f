// Package model defines domain entities for the application.
package model

import "time"

// URL represents a shortened URL entity. ShortCode is the primary key;
// LongURL is the only field mutable after creation, and only by the owner.
type URL struct {
	ShortCode string    `json:"short_code"`
	LongURL   string    `json:"long_url"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a copy of the record. Stores hand out clones so callers
// can never mutate stored state without going through the store.
func (u *URL) Clone() *URL {
	c := *u
	return &c
}
