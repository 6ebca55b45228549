// Package utils collects the small cross-cutting helpers used by both the
// relay and the client: context keys, JWT generation/validation, UUIDs,
// HMAC body hashing, and JSON response writing.
package utils

import "context"

// contextKey is a private type for context keys, preventing collisions
// with string-based keys from other packages.
type contextKey string

func (c contextKey) String() string { return string(c) }

// UserIDCtxKey stores the authenticated user's database id in the request
// context, set by the auth middleware after JWT validation.
var UserIDCtxKey = contextKey("userID")

// UserEmailCtxKey stores the authenticated user's email in the request
// context. Share envelopes are addressed by email, so most handlers need
// it alongside the numeric id.
var UserEmailCtxKey = contextKey("userEmail")

// GetUserIDFromContext retrieves the user id placed in ctx by the auth
// middleware. ok is false when the value is absent or mistyped.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserEmailFromContext retrieves the user email placed in ctx by the
// auth middleware.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}
