// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the transport
// hash key. Must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool initializes the pool of HMAC-SHA256 hashers used for
// request-body integrity signatures. Pooling avoids re-allocating a hasher
// per request on the vault PUT path.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes the HMAC-SHA256 of value under key and returns it
// hex-encoded. One-off variant that does not touch the pool.
func HashString(value, key string) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidHash reports whether sum is the correct pooled-key HMAC for data.
// Comparison is constant-time.
func ValidHash(data, sum []byte) bool {
	return hmac.Equal(Hash(data), sum)
}
