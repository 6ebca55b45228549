package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token used to authenticate relay requests.
// SignedString is the compact serialized form ready for the Authorization
// header; UserID caches the parsed "sub" claim so handlers do not re-parse
// it on every access.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Email is a private claim carrying the account email, so handlers can
	// address share inboxes without a user lookup per request.
	Email string `json:"eml,omitempty"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("get subject claim: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse subject claim %q: %w", sub, err)
	}

	return userID, nil
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
