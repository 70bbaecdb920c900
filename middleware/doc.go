// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap a router with request logging:

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.WithLogging)

Logs one line per request with request_id, method, path, status, remote
and duration_ms.

# Admin Routes

Moderation routes require the X-Admin-Key header:

	r.With(middleware.RequireAdmin(cfg.AdminKey)).Delete("/puzzles/{code}", h.Delete)

A missing or wrong key yields 401 before the handler runs.

# CORS Middleware

Enable cross-origin requests for the web client:

	r.Use(middleware.CORS)

Allows methods GET, POST, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreatePuzzleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
