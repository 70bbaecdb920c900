// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/puzzlebox/cliparse"
	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/middleware"
	"github.com/danielhkuo/puzzlebox/models"
)

// LogHandler serves one append-only log (feedback or error reports).
// Both logs share request handling and differ only in the service calls.
type LogHandler struct {
	name string
	add  func(ctx context.Context, page, data string) error
	list func(ctx context.Context) ([]models.Record, error)
	del  func(ctx context.Context, id int64) error
}

func NewFeedbackHandler(svc *identifier.Service, cfg cliparse.Config) *LogHandler {
	return &LogHandler{
		name: "feedback",
		add:  svc.AddFeedback,
		list: svc.ListFeedback,
		del:  svc.DeleteFeedback,
	}
}

func NewErrorHandler(svc *identifier.Service, cfg cliparse.Config) *LogHandler {
	return &LogHandler{
		name: "error report",
		add:  svc.AddError,
		list: svc.ListErrors,
		del:  svc.DeleteError,
	}
}

// Add handles POST /feedback and POST /errors
// The page is taken from the Referer header.
func (h *LogHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.LogEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Data == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data is required")
		return
	}

	if err := h.add(r.Context(), r.Referer(), req.Data); err != nil {
		slog.Error("failed to add "+h.name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add "+h.name)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// List handles GET /feedback and GET /errors (admin)
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.list(r.Context())
	if err != nil {
		slog.Error("failed to list "+h.name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list "+h.name)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// Delete handles DELETE /feedback/{id} and DELETE /errors/{id} (admin)
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.del(r.Context(), id); err != nil {
		slog.Error("failed to delete "+h.name, "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete "+h.name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
