// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identifier derives puzzle display codes and mediates access to the
puzzle store and the feedback, error and telemetry logs.

# Display Codes

A display code is a deterministic function of the serialized puzzle
content (never the solution or metadata):

	code := identifier.DisplayCode(puzzleJSON)

  1. SHA-256 of the content
  2. first 8 hex characters, uppercased
  3. I→A, O→B, 1→C, 0→D

Codes therefore use 32 symbols ([0-9A-Z] minus I, O, 1, 0). With 8 symbols
the space is 2^40 and a 50% chance of any collision is reached around 2^20
puzzles. Collisions are not detected: two different contents with the same
code resolve to whichever was stored first.

# Creating Puzzles

	svc := identifier.New(conn, images)
	code, err := svc.CreatePuzzle(ctx, "Sunday", puzzleJSON, solutionJSON, png)

CreatePuzzle looks the code up first. If it exists the code is returned and
nothing is uploaded or inserted. Otherwise the image is uploaded under the
code and the row inserted with ON CONFLICT DO NOTHING, so two concurrent
identical submissions still leave a single row.

# Reading and Deleting

	p, err := svc.GetPuzzle(ctx, code)            // nil, nil when absent
	ps, err := svc.ListPuzzles(ctx, "date", "desc", 0, 20)
	err = svc.DeletePuzzle(ctx, code)             // missing code is a no-op

ListPuzzles recognizes only the "date" sort key; anything else logs a
warning and returns an empty page.

# Logs

Feedback and error reports are append-only apart from administrative
delete. Listings flatten rows to models.Record and append telemetry events
tagged "feedback" or "error" respectively.

Telemetry events carry models.TelemetryFields. RecordPuzzleStart stamps
start_time; RecordPuzzleSolve sets solve_time once on the rows matching the
session and puzzle.
*/
package identifier
