// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/puzzlebox/auth"
	"github.com/danielhkuo/puzzlebox/cliparse"
	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/middleware"
	"github.com/danielhkuo/puzzlebox/models"
)

type TelemetryHandler struct {
	svc *identifier.Service
	cfg cliparse.Config
}

func NewTelemetryHandler(svc *identifier.Service, cfg cliparse.Config) *TelemetryHandler {
	return &TelemetryHandler{svc: svc, cfg: cfg}
}

// Session handles GET /session
func (h *TelemetryHandler) Session(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		SessionID: auth.GenerateSessionID(),
	})
}

// Record handles POST /telemetry
func (h *TelemetryHandler) Record(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.parse(w, r, "")
	if !ok {
		return
	}

	err := h.svc.RecordTelemetry(r.Context(), fields)
	h.respond(w, err, "failed to record telemetry")
}

// Start handles POST /telemetry/start
func (h *TelemetryHandler) Start(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.parse(w, r, models.EventPuzzleStart)
	if !ok {
		return
	}

	err := h.svc.RecordPuzzleStart(r.Context(), deref(fields.Puzzle), fields)
	h.respond(w, err, "failed to record puzzle start")
}

// Solve handles POST /telemetry/solve
func (h *TelemetryHandler) Solve(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.parse(w, r, models.EventPuzzleSolve)
	if !ok {
		return
	}

	err := h.svc.RecordPuzzleSolve(r.Context(), deref(fields.Puzzle), fields.SessionID, fields)
	h.respond(w, err, "failed to record puzzle solve")
}

// parse decodes a telemetry request and stamps the configured server
// version. defaultEvent fills an empty event_type.
func (h *TelemetryHandler) parse(w http.ResponseWriter, r *http.Request, defaultEvent string) (models.TelemetryFields, bool) {
	var req models.TelemetryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.TelemetryFields{}, false
	}
	if req.EventType == "" {
		req.EventType = defaultEvent
	}

	fields := req.Fields(h.cfg.ServerVersion)
	if err := fields.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return models.TelemetryFields{}, false
	}
	if err := auth.ValidateSessionID(fields.SessionID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return models.TelemetryFields{}, false
	}

	return fields, true
}

func (h *TelemetryHandler) respond(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, models.ErrMissingField) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error(msg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record telemetry")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
