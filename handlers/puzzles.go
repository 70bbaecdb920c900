// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/puzzlebox/cliparse"
	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/imagestore"
	"github.com/danielhkuo/puzzlebox/middleware"
	"github.com/danielhkuo/puzzlebox/models"
)

type PuzzleHandler struct {
	svc *identifier.Service
	cfg cliparse.Config
}

func NewPuzzleHandler(svc *identifier.Service, cfg cliparse.Config) *PuzzleHandler {
	return &PuzzleHandler{svc: svc, cfg: cfg}
}

// Create handles POST /puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePuzzleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.PuzzleJSON == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "puzzle_json is required")
		return
	}
	if req.SolutionJSON == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "solution_json is required")
		return
	}
	if len(req.Image) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image is required")
		return
	}

	code, err := h.svc.CreatePuzzle(r.Context(), req.Title, req.PuzzleJSON, req.SolutionJSON, req.Image)
	if errors.Is(err, identifier.ErrEmptyPuzzle) || errors.Is(err, imagestore.ErrEmptyImage) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create puzzle", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create puzzle")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePuzzleResponse{Code: code})
}

// Get handles GET /puzzles/{code}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	puzzle, err := h.svc.GetPuzzle(r.Context(), code)
	if err != nil {
		slog.Error("failed to get puzzle", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get puzzle")
		return
	}
	if puzzle == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Puzzle not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, puzzle)
}

// List handles GET /puzzles?sort=date&order=desc&offset=0&limit=20
func (h *PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sortKey := q.Get("sort")
	if sortKey == "" {
		sortKey = models.SortByDate
	}

	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "offset must be an integer")
		return
	}
	limit, err := intParam(q.Get("limit"), identifier.DefaultPageSize)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be an integer")
		return
	}

	puzzles, err := h.svc.ListPuzzles(r.Context(), sortKey, q.Get("order"), offset, limit)
	if err != nil {
		slog.Error("failed to list puzzles", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list puzzles")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, puzzles)
}

// Delete handles DELETE /puzzles/{code} (admin)
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.svc.DeletePuzzle(r.Context(), code); err != nil {
		slog.Error("failed to delete puzzle", "error", err, "code", code)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete puzzle")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
