// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key validation and session identifiers.

# Admin Keys

Moderation endpoints (listing and deleting feedback, errors and puzzles)
require the configured admin key in the X-Admin-Key header:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

Both values are hashed with SHA-256 and compared with hmac.Equal, so the
check takes the same time whatever the input length. An empty configured
key rejects everything.

# Session IDs

Telemetry events are correlated by a session id the client obtains once:

	id := auth.GenerateSessionID()   // UUID v7
	err := auth.ValidateSessionID(id)
*/
package auth
