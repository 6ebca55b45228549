package config

import "errors"

var (
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
)
