// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identifier

import (
	"context"
	"fmt"

	"github.com/danielhkuo/puzzlebox/models"
)

// RecordTelemetry appends one telemetry event.
func (s *Service) RecordTelemetry(ctx context.Context, f models.TelemetryFields) error {
	if err := f.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO telemetry (
			created_at, session_id, event_type, server_version, client_version,
			page, puzzle, data, start_time, solve_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, s.timestamp(), f.SessionID, f.EventType, f.ServerVersion, f.ClientVersion,
		f.Page, f.Puzzle, f.Data, f.StartTime, f.SolveTime)
	if err != nil {
		return fmt.Errorf("failed to insert telemetry: %w", err)
	}
	return nil
}

// RecordPuzzleStart records that a session opened a puzzle, stamping
// start_time. An empty puzzle code is ignored.
func (s *Service) RecordPuzzleStart(ctx context.Context, puzzle string, f models.TelemetryFields) error {
	if puzzle == "" {
		return nil
	}

	now := s.timestamp()
	f.Puzzle = &puzzle
	f.StartTime = &now
	return s.RecordTelemetry(ctx, f)
}

// RecordPuzzleSolve sets solve_time on the session's telemetry rows for
// puzzle. Rows that already have a solve time keep it. An empty puzzle
// code is ignored; extra fields are only logged.
func (s *Service) RecordPuzzleSolve(ctx context.Context, puzzle, sessionID string, f models.TelemetryFields) error {
	if puzzle == "" {
		return nil
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE telemetry
		SET solve_time = $1
		WHERE session_id = $2 AND puzzle = $3 AND solve_time IS NULL
	`, s.timestamp(), sessionID, puzzle)
	if err != nil {
		return fmt.Errorf("failed to record puzzle solve: %w", err)
	}

	n, _ := res.RowsAffected()
	s.log.Info("puzzle solved",
		"puzzle", puzzle,
		"session_id", sessionID,
		"client_version", f.ClientVersion,
		"rows", n,
	)
	return nil
}

// ListTelemetry returns telemetry rows of one event type, or every row
// when eventType is empty.
func (s *Service) ListTelemetry(ctx context.Context, eventType string) ([]models.Telemetry, error) {
	query := `
		SELECT id, created_at, session_id, event_type, server_version, client_version,
		       page, puzzle, data, start_time, solve_time
		FROM telemetry`
	var args []any
	if eventType != "" {
		query += " WHERE event_type = $1"
		args = append(args, eventType)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query telemetry: %w", err)
	}
	defer rows.Close()

	events := []models.Telemetry{}
	for rows.Next() {
		var t models.Telemetry
		err := rows.Scan(
			&t.ID, &t.CreatedAt, &t.SessionID, &t.EventType, &t.ServerVersion, &t.ClientVersion,
			&t.Page, &t.Puzzle, &t.Data, &t.StartTime, &t.SolveTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan telemetry: %w", err)
		}
		events = append(events, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate telemetry: %w", err)
	}
	return events, nil
}

func (s *Service) appendTelemetryRecords(ctx context.Context, records []models.Record, eventType string) ([]models.Record, error) {
	events, err := s.ListTelemetry(ctx, eventType)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		records = append(records, e.Record())
	}
	return records, nil
}
