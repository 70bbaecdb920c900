// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePuzzleRequest: title, puzzle_json, solution_json, image (base64)
  - LogEntryRequest: data (feedback and error reports)
  - TelemetryRequest: session_id, event_type, client_version, page, puzzle, data

# Response Types

  - CreatePuzzleResponse: code
  - SessionResponse: session_id
  - ErrorResponse: error, message

# Domain Types

  - Puzzle: display code, content, solution, image URL, title
  - Feedback: free-text feedback with referring page
  - ErrorReport: client error report with referring page
  - Telemetry: session event, embeds TelemetryFields

# Records

Admin listings flatten rows into Record (map[string]string) through a
per-type Record method. Keys are fixed:

	feedback, error: id, page, date, data
	telemetry:       id, date, session_id, event_type, server_version,
	                 client_version, page, puzzle, data, start_time, solve_time

Timestamps render as RFC 3339 in UTC. NULL columns render as "".

# Constants

Sort keys and orders:

	SortByDate = "date"
	OrderAsc   = "asc"
	OrderDesc  = "desc"

Telemetry event types:

	EventPageView    = "page_view"
	EventPuzzleStart = "puzzle_start"
	EventPuzzleSolve = "puzzle_solve"
	EventFeedback    = "feedback"
	EventError       = "error"
*/
package models
