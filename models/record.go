// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strconv"
	"time"
)

// Record is the flattened, string-only form of a log row used by the admin
// listings. Keys are fixed per record type; NULL columns render as "".
type Record map[string]string

// Record keys shared by feedback, error and telemetry rows
const (
	KeyID   = "id"
	KeyPage = "page"
	KeyDate = "date"
	KeyData = "data"
)

// Telemetry-only record keys
const (
	KeySessionID     = "session_id"
	KeyEventType     = "event_type"
	KeyServerVersion = "server_version"
	KeyClientVersion = "client_version"
	KeyPuzzle        = "puzzle"
	KeyStartTime     = "start_time"
	KeySolveTime     = "solve_time"
)

// Record returns id, page, date and data.
func (f Feedback) Record() Record {
	return logRecord(f.ID, f.Page, f.CreatedAt, f.Data)
}

// Record returns id, page, date and data.
func (e ErrorReport) Record() Record {
	return logRecord(e.ID, e.Page, e.CreatedAt, e.Data)
}

// Record returns every telemetry column.
func (t Telemetry) Record() Record {
	return Record{
		KeyID:            strconv.FormatInt(t.ID, 10),
		KeyDate:          formatTime(t.CreatedAt),
		KeySessionID:     t.SessionID,
		KeyEventType:     t.EventType,
		KeyServerVersion: t.ServerVersion,
		KeyClientVersion: t.ClientVersion,
		KeyPage:          deref(t.Page),
		KeyPuzzle:        deref(t.Puzzle),
		KeyData:          deref(t.Data),
		KeyStartTime:     formatTimePtr(t.StartTime),
		KeySolveTime:     formatTimePtr(t.SolveTime),
	}
}

func logRecord(id int64, page *string, date time.Time, data *string) Record {
	return Record{
		KeyID:   strconv.FormatInt(id, 10),
		KeyPage: deref(page),
		KeyDate: formatTime(date),
		KeyData: deref(data),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
