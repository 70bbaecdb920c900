// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, driver string) error {
	var autoID string
	switch driver {
	case DriverPostgres:
		autoID = "BIGSERIAL PRIMARY KEY"
	case DriverSQLite:
		autoID = "INTEGER PRIMARY KEY AUTOINCREMENT"
	default:
		return fmt.Errorf("failed to create schema: unsupported database type %q", driver)
	}

	_, err := db.Exec(strings.ReplaceAll(schema, "{{AUTO_ID}}", autoID))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every application table. Data is not recoverable.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS telemetry;
		DROP TABLE IF EXISTS error_report;
		DROP TABLE IF EXISTS feedback;
		DROP TABLE IF EXISTS puzzle;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

// 8 symbols over [0-9A-Z] minus I, O, 1, 0: 2^40 codes,
// 50% collision chance around 2^20 puzzles.
const schema = `
-- Puzzles
CREATE TABLE IF NOT EXISTS puzzle (
    display_code VARCHAR(8) PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    puzzle_json TEXT NOT NULL,
    solution_json TEXT NOT NULL,
    url TEXT,
    title TEXT
);

CREATE INDEX IF NOT EXISTS idx_puzzle_created_at ON puzzle(created_at);

-- Feedback
CREATE TABLE IF NOT EXISTS feedback (
    id {{AUTO_ID}},
    page TEXT,
    created_at TIMESTAMP NOT NULL,
    data TEXT
);

-- Error reports
CREATE TABLE IF NOT EXISTS error_report (
    id {{AUTO_ID}},
    page TEXT,
    created_at TIMESTAMP NOT NULL,
    data TEXT
);

-- Telemetry
CREATE TABLE IF NOT EXISTS telemetry (
    id {{AUTO_ID}},
    created_at TIMESTAMP NOT NULL,
    session_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    server_version TEXT NOT NULL,
    client_version TEXT NOT NULL,
    page TEXT,
    puzzle TEXT,
    data TEXT,
    start_time TIMESTAMP,
    solve_time TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_telemetry_session_puzzle ON telemetry(session_id, puzzle);
CREATE INDEX IF NOT EXISTS idx_telemetry_event_type ON telemetry(event_type);
`
