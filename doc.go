// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the puzzlebox command: the Puzzle Box API server and
its moderation tools.

Puzzle Box stores user-submitted puzzles under short display codes derived
from their content, collects feedback and client error reports, and records
puzzle start/solve telemetry.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=./puzzlebox.db ADMIN_KEY=... go run . serve

Or against PostgreSQL with flags:

	go run . serve -t postgres -d "postgres://..." --admin-key ...

A .env file in the working directory is read too; it never overrides
variables already set.

# Moderation

	puzzlebox puzzles list --order desc --limit 50
	puzzlebox puzzles delete BA78C6BF
	puzzlebox feedback list
	puzzlebox errors delete 12

List commands print JSON.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY (--admin-key): Key for moderation endpoints

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - IMAGE_DIR, IMAGE_BASE_URL: Puzzle image storage
  - SERVER_VERSION: Version recorded with telemetry
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - identifier: Display codes, puzzles, logs and telemetry
  - imagestore: Puzzle image storage
  - handlers: HTTP request handlers
  - router: chi route definitions
  - middleware: CORS, admin key, logging, JSON helpers
  - models: Request/response and record types
  - auth: Admin key and session id handling
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
