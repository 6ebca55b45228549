package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered (v7) identifiers for envelopes and
// vault entries, falling back to v4 if the monotonic source fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
