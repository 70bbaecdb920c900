// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identifier

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/puzzlebox/imagestore"
)

var ErrEmptyPuzzle = errors.New("puzzle content is empty")

// Service derives display codes and mediates access to puzzles and the
// feedback, error and telemetry logs. It holds no state beyond its
// collaborators and is safe for concurrent use.
type Service struct {
	db     *sql.DB
	images imagestore.Store
	now    func() time.Time
	log    *slog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source used for created_at, start_time and
// solve_time.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

// New creates a Service over an open database and image store.
func New(db *sql.DB, images imagestore.Store, opts ...Option) *Service {
	s := &Service{
		db:     db,
		images: images,
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

// nullString maps "" to NULL.
func nullString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
