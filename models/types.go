// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Puzzle sort keys
const (
	SortByDate = "date"
)

// Sort orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Request types

type CreatePuzzleRequest struct {
	Title        string `json:"title"`
	PuzzleJSON   string `json:"puzzle_json"`
	SolutionJSON string `json:"solution_json"`
	Image        []byte `json:"image"` // base64 in JSON
}

type LogEntryRequest struct {
	Data string `json:"data"`
}

// Used for /telemetry, /telemetry/start and /telemetry/solve.
// The server version is never taken from the client.
type TelemetryRequest struct {
	SessionID     string  `json:"session_id"`
	EventType     string  `json:"event_type"`
	ClientVersion string  `json:"client_version"`
	Page          *string `json:"page,omitempty"`
	Puzzle        *string `json:"puzzle,omitempty"`
	Data          *string `json:"data,omitempty"`
}

// Response types

type CreatePuzzleResponse struct {
	Code string `json:"code"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// Domain types

type Puzzle struct {
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"created_at"`
	PuzzleJSON   string    `json:"puzzle_json"`
	SolutionJSON string    `json:"solution_json"`
	URL          *string   `json:"url,omitempty"`
	Title        *string   `json:"title,omitempty"`
}

type Feedback struct {
	ID        int64     `json:"id"`
	Page      *string   `json:"page,omitempty"`
	CreatedAt time.Time `json:"date"`
	Data      *string   `json:"data,omitempty"`
}

// ErrorReport is a client-side error submitted by the web app.
type ErrorReport struct {
	ID        int64     `json:"id"`
	Page      *string   `json:"page,omitempty"`
	CreatedAt time.Time `json:"date"`
	Data      *string   `json:"data,omitempty"`
}

type Telemetry struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"date"`
	TelemetryFields
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
