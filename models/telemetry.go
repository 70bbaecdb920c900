// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"time"
)

// Telemetry event types
const (
	EventPageView    = "page_view"
	EventPuzzleStart = "puzzle_start"
	EventPuzzleSolve = "puzzle_solve"
	EventFeedback    = "feedback"
	EventError       = "error"
)

var ErrMissingField = errors.New("missing required field")

// TelemetryFields enumerates every column a telemetry event may set.
// SessionID, EventType, ServerVersion and ClientVersion are required.
type TelemetryFields struct {
	SessionID     string     `json:"session_id"`
	EventType     string     `json:"event_type"`
	ServerVersion string     `json:"server_version"`
	ClientVersion string     `json:"client_version"`
	Page          *string    `json:"page,omitempty"`
	Puzzle        *string    `json:"puzzle,omitempty"`
	Data          *string    `json:"data,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	SolveTime     *time.Time `json:"solve_time,omitempty"`
}

// Validate reports the first missing required field, wrapped in ErrMissingField.
func (f TelemetryFields) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"session_id", f.SessionID},
		{"event_type", f.EventType},
		{"server_version", f.ServerVersion},
		{"client_version", f.ClientVersion},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}
	return nil
}

// Fields converts a client request into telemetry fields, stamping the
// server version.
func (r TelemetryRequest) Fields(serverVersion string) TelemetryFields {
	return TelemetryFields{
		SessionID:     r.SessionID,
		EventType:     r.EventType,
		ServerVersion: serverVersion,
		ClientVersion: r.ClientVersion,
		Page:          r.Page,
		Puzzle:        r.Puzzle,
		Data:          r.Data,
	}
}
