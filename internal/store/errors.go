package store

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrVaultNotFound      = errors.New("vault not found")
	ErrEnvelopeNotFound   = errors.New("share envelope not found")
	ErrCacheMiss          = errors.New("no cached vault")
)
