// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/tinyapp/tinyapp/internal/model"
)

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateURLRequest represents the request body for shortening a URL.
type CreateURLRequest struct {
	LongURL string `json:"long_url"`
}

// UpdateURLRequest represents the request body for updating a URL.
type UpdateURLRequest struct {
	LongURL string `json:"long_url"`
}

// URLResponse represents a short URL record in API responses.
type URLResponse struct {
	ShortCode string    `json:"short_code"`
	ShortURL  string    `json:"short_url"`
	LongURL   string    `json:"long_url"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// URLListResponse represents the owner's URLs keyed by short code.
type URLListResponse struct {
	URLs map[string]URLResponse `json:"urls"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToURLResponse converts a URL model to URLResponse DTO.
func ToURLResponse(url *model.URL, baseURL string) URLResponse {
	return URLResponse{
		ShortCode: url.ShortCode,
		ShortURL:  baseURL + "/u/" + url.ShortCode,
		LongURL:   url.LongURL,
		OwnerID:   url.OwnerID,
		CreatedAt: url.CreatedAt,
		UpdatedAt: url.UpdatedAt,
	}
}

// ToURLListResponse converts the service's owner listing to a response.
func ToURLListResponse(urls map[string]*model.URL, baseURL string) URLListResponse {
	out := URLListResponse{URLs: make(map[string]URLResponse, len(urls))}
	for code, url := range urls {
		out.URLs[code] = ToURLResponse(url, baseURL)
	}
	return out
}
