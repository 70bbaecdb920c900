// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the relational store and manages its schema.

# Opening a Connection

Open supports PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite):

	conn, err := db.Open(db.DriverPostgres, "postgres://...")
	conn, err := db.Open(db.DriverSQLite, "file:puzzles.db")

SQLite connections get production pragmas applied on open:

	foreign_keys = ON
	journal_mode = WAL
	busy_timeout = 10000
	synchronous  = NORMAL

In-memory SQLite must use a single connection:

	conn, err := db.Open(db.DriverSQLite, ":memory:", db.WithMaxOpenConns(1))

# Schema Creation

CreateSchema initializes all required tables for the given driver:

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Autoincrement ids use BIGSERIAL on PostgreSQL and INTEGER PRIMARY KEY
AUTOINCREMENT on SQLite; everything else is shared DDL.

# Tables

  - puzzle: display_code (primary key), content, solution, image URL, title
  - feedback: free-text feedback with referring page
  - error_report: client error reports with referring page
  - telemetry: session events; solve_time is set once per session and puzzle

# Indexes

  - puzzle.created_at
  - telemetry.(session_id, puzzle)
  - telemetry.event_type
*/
package db
