// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/puzzlebox/models"
	"github.com/danielhkuo/puzzlebox/testutil"
)

const testSession = "0190d6f2-8b7a-7c3e-9f1a-2b3c4d5e6f70"

func TestSession(t *testing.T) {
	env := setupHandlers(t)
	h := NewTelemetryHandler(env.svc, env.cfg)

	w := httptest.NewRecorder()
	h.Session(w, httptest.NewRequest("GET", "/session", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SessionResponse
	testutil.AssertJSON(t, w, &resp)
	id, err := uuid.Parse(resp.SessionID)
	if err != nil {
		t.Fatalf("Expected a UUID session id, got '%s'", resp.SessionID)
	}
	if id.Version() != 7 {
		t.Errorf("Expected UUID v7, got v%d", id.Version())
	}
}

func TestRecordTelemetry(t *testing.T) {
	env := setupHandlers(t)
	h := NewTelemetryHandler(env.svc, env.cfg)

	req := testutil.MakeRequest("POST", "/telemetry", map[string]string{
		"session_id":     testSession,
		"event_type":     models.EventPageView,
		"client_version": "1.2.0",
		"server_version": "spoofed",
		"page":           "/p/BA78C6BF",
	}, nil)
	w := httptest.NewRecorder()
	h.Record(w, req)
	testutil.AssertStatus(t, w, http.StatusAccepted)

	events, err := env.svc.ListTelemetry(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to list telemetry: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].ServerVersion != env.cfg.ServerVersion {
		t.Errorf("Expected server version '%s', got '%s'", env.cfg.ServerVersion, events[0].ServerVersion)
	}
	if events[0].Page == nil || *events[0].Page != "/p/BA78C6BF" {
		t.Errorf("Unexpected page %v", events[0].Page)
	}
}

func TestRecordTelemetryValidation(t *testing.T) {
	env := setupHandlers(t)
	h := NewTelemetryHandler(env.svc, env.cfg)

	testCases := []struct {
		name string
		body map[string]string
	}{
		{"missing session", map[string]string{"event_type": "page_view", "client_version": "1"}},
		{"missing event type", map[string]string{"session_id": testSession, "client_version": "1"}},
		{"missing client version", map[string]string{"session_id": testSession, "event_type": "page_view"}},
		{"session not a uuid", map[string]string{"session_id": "abc", "event_type": "page_view", "client_version": "1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Record(w, testutil.MakeRequest("POST", "/telemetry", tc.body, nil))
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	if n := testutil.CountRows(t, env.db, "telemetry"); n != 0 {
		t.Errorf("Expected no telemetry rows, got %d", n)
	}
}

func TestPuzzleStartAndSolve(t *testing.T) {
	env := setupHandlers(t)
	h := NewTelemetryHandler(env.svc, env.cfg)

	body := map[string]string{
		"session_id":     testSession,
		"client_version": "1.2.0",
		"puzzle":         "BA78C6BF",
	}

	w := httptest.NewRecorder()
	h.Start(w, testutil.MakeRequest("POST", "/telemetry/start", body, nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)

	w = httptest.NewRecorder()
	h.Solve(w, testutil.MakeRequest("POST", "/telemetry/solve", body, nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)

	events, err := env.svc.ListTelemetry(context.Background(), models.EventPuzzleStart)
	if err != nil {
		t.Fatalf("Failed to list telemetry: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 start event, got %d", len(events))
	}
	if events[0].StartTime == nil {
		t.Error("Expected start_time to be set")
	}
	if events[0].SolveTime == nil {
		t.Error("Expected solve_time to be set")
	}
}

func TestPuzzleStartWithoutPuzzle(t *testing.T) {
	env := setupHandlers(t)
	h := NewTelemetryHandler(env.svc, env.cfg)

	body := map[string]string{"session_id": testSession, "client_version": "1.2.0"}

	w := httptest.NewRecorder()
	h.Start(w, testutil.MakeRequest("POST", "/telemetry/start", body, nil))
	testutil.AssertStatus(t, w, http.StatusAccepted)

	if n := testutil.CountRows(t, env.db, "telemetry"); n != 0 {
		t.Errorf("Expected no telemetry rows, got %d", n)
	}
}
