// Package auth provides credential hashing and request identity helpers.
package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDContextKey is the context key for the session's resolved user id.
const userIDContextKey contextKey = "user_id"

// ContextWithUserID adds the session's resolved user id to the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext retrieves the session's user id from the context.
// Returns empty string for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(userIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}
