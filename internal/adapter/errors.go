package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("relay rejected credentials")
	ErrNotFound     = errors.New("not found on relay")
	ErrConflict     = errors.New("conflict on relay")
	ErrBadRequest   = errors.New("relay rejected request")
	ErrRelay        = errors.New("relay unavailable")
)
