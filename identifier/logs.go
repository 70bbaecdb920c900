// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identifier

import (
	"context"
	"fmt"

	"github.com/danielhkuo/puzzlebox/models"
)

// AddFeedback appends a feedback entry. page is the referring page supplied
// by the web layer and may be empty.
func (s *Service) AddFeedback(ctx context.Context, page, data string) error {
	s.log.Info("received feedback", "page", page, "data", data)
	return s.appendLog(ctx, "feedback", page, data)
}

// ListFeedback returns all feedback rows followed by telemetry events
// tagged "feedback".
func (s *Service) ListFeedback(ctx context.Context) ([]models.Record, error) {
	rows, err := s.queryLog(ctx, "feedback")
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.Feedback(r).Record())
	}
	return s.appendTelemetryRecords(ctx, records, models.EventFeedback)
}

// DeleteFeedback removes a feedback entry; a missing id is not an error.
func (s *Service) DeleteFeedback(ctx context.Context, id int64) error {
	return s.deleteLog(ctx, "feedback", id)
}

// AddError appends a client error report.
func (s *Service) AddError(ctx context.Context, page, data string) error {
	s.log.Info("received error report", "page", page, "data", data)
	return s.appendLog(ctx, "error_report", page, data)
}

// ListErrors returns all error reports followed by telemetry events tagged
// "error".
func (s *Service) ListErrors(ctx context.Context) ([]models.Record, error) {
	rows, err := s.queryLog(ctx, "error_report")
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.ErrorReport(r).Record())
	}
	return s.appendTelemetryRecords(ctx, records, models.EventError)
}

// DeleteError removes an error report; a missing id is not an error.
func (s *Service) DeleteError(ctx context.Context, id int64) error {
	return s.deleteLog(ctx, "error_report", id)
}

// feedback and error_report share a shape; table is always one of those
// two constants, never caller input.

func (s *Service) appendLog(ctx context.Context, table, page, data string) error {
	query := fmt.Sprintf("INSERT INTO %s (page, created_at, data) VALUES ($1, $2, $3)", table)
	if _, err := s.db.ExecContext(ctx, query, page, s.timestamp(), data); err != nil {
		return fmt.Errorf("failed to insert %s: %w", table, err)
	}
	return nil
}

func (s *Service) queryLog(ctx context.Context, table string) ([]models.Feedback, error) {
	query := fmt.Sprintf("SELECT id, page, created_at, data FROM %s ORDER BY id", table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var entries []models.Feedback
	for rows.Next() {
		var e models.Feedback
		if err := rows.Scan(&e.ID, &e.Page, &e.CreatedAt, &e.Data); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return entries, nil
}

func (s *Service) deleteLog(ctx context.Context, table string, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", table, err)
	}

	n, _ := res.RowsAffected()
	s.log.Info("log entry deleted", "table", table, "id", id, "rows", n)
	return nil
}
