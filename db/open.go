// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type config struct {
	busyTimeout int
	synchronous string
	maxOpen     int
	ping        bool
}

func defaults() config {
	return config{
		busyTimeout: 10_000,
		synchronous: "NORMAL",
		ping:        true,
	}
}

// Option customises Open behaviour.
type Option func(*config)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds (SQLite only).
func WithBusyTimeout(ms int) Option { return func(c *config) { c.busyTimeout = ms } }

// WithSynchronous sets PRAGMA synchronous (SQLite only).
func WithSynchronous(mode string) Option { return func(c *config) { c.synchronous = mode } }

// WithMaxOpenConns caps the pool. In-memory SQLite needs 1, since every
// connection to ":memory:" is a separate database.
func WithMaxOpenConns(n int) Option { return func(c *config) { c.maxOpen = n } }

// WithoutPing skips the Ping verification after opening.
func WithoutPing() Option { return func(c *config) { c.ping = false } }

// Open connects to PostgreSQL or SQLite. SQLite connections get
// foreign_keys, WAL, busy_timeout and synchronous pragmas applied.
func Open(driver, dsn string, opts ...Option) (*sql.DB, error) {
	cfg := defaults()
	for _, o := range opts {
		o(&cfg)
	}

	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database type %q", driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.maxOpen > 0 {
		conn.SetMaxOpenConns(cfg.maxOpen)
	}

	if driver == DriverSQLite {
		if err := applyPragmas(conn, &cfg); err != nil {
			conn.Close()
			return nil, err
		}
	}

	if cfg.ping {
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
	}

	return conn, nil
}

func applyPragmas(conn *sql.DB, cfg *config) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		fmt.Sprintf("PRAGMA synchronous = %s", cfg.synchronous),
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
