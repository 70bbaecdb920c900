// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidSession  = errors.New("invalid session id")
)

// ValidateAdminKey checks the provided admin key against the configured one.
// Both sides are hashed first so the comparison is constant time regardless
// of length. An empty configured key never validates.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" || provided == "" {
		return ErrInvalidAdminKey
	}
	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateSessionID creates a new telemetry session identifier.
// UUID v7 keeps sessions time-sortable.
func GenerateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.NewString()
	}
	return id.String()
}

// ValidateSessionID rejects session ids that are not UUIDs.
func ValidateSessionID(sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return ErrInvalidSession
	}
	return nil
}
