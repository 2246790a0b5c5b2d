// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"net/http"
)

// AdminKeyHeader carries the admin key on write requests.
const AdminKeyHeader = "X-Admin-Key"

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the provided key against the configured one.
// An empty configured key disables the check.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" {
		return nil
	}
	// Compare digests so the comparison time does not depend on key length
	if !hmac.Equal(digest(provided), digest(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ValidateRequest validates the admin key header of r.
func ValidateRequest(r *http.Request, expected string) error {
	return ValidateAdminKey(r.Header.Get(AdminKeyHeader), expected)
}

func digest(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}
