// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Puzzle Box API.

# Handler Types

Each handler is a struct built over the identifier service and Config:

  - PuzzleHandler: puzzle create, lookup, listing and deletion
  - LogHandler: feedback and client error logs (one instance per log)
  - TelemetryHandler: session ids and telemetry events

Handlers are created via constructor functions:

	puzzleHandler := handlers.NewPuzzleHandler(svc, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(svc, cfg)

# Puzzles

	POST   /puzzles        → Create (201, returns the display code)
	GET    /puzzles        → List (sort, order, offset, limit)
	GET    /puzzles/{code} → Get (404 when absent)
	DELETE /puzzles/{code} → Delete (admin)

Submitting content that is already stored returns the existing code.
Codes are matched case-insensitively.

# Feedback and Error Logs

	POST   /feedback       → Add (page taken from the Referer header)
	GET    /feedback       → List (admin)
	DELETE /feedback/{id}  → Delete (admin)

The /errors routes mirror /feedback. Listings include telemetry events
tagged "feedback" or "error".

# Telemetry

	GET  /session          → Session (new UUID v7 session id)
	POST /telemetry        → Record
	POST /telemetry/start  → Start (stamps start_time)
	POST /telemetry/solve  → Solve (stamps solve_time once)

Telemetry endpoints answer 202. The server version is always taken from
Config, never from the client.

# Error Responses

All errors use a consistent JSON format:

	{
	  "error": "Bad Request",
	  "message": "puzzle_json is required"
	}

Validation failures are 400, missing puzzles 404, admin key failures 401
and storage failures 500.
*/
package handlers
