// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Puzzle Box API.

# Route Registration

NewRouter creates a chi router with all endpoints:

	store, _ := imagestore.NewFSStore(cfg.ImageDir, cfg.ImageBaseURL)
	svc := identifier.New(conn, store)
	handler := router.NewRouter(svc, store.Handler(), cfg)

Every request passes through RequestID, Recoverer, CORS and request
logging.

# Endpoints

Health:

	GET /health
	GET /

Puzzles:

	POST   /puzzles        - Create puzzle (returns display code)
	GET    /puzzles        - List puzzles
	GET    /puzzles/{code} - Get puzzle
	DELETE /puzzles/{code} - Delete puzzle (admin)

Feedback and client errors:

	POST   /feedback      - Submit feedback
	GET    /feedback      - List feedback (admin)
	DELETE /feedback/{id} - Delete feedback (admin)
	POST   /errors        - Submit error report
	GET    /errors        - List error reports (admin)
	DELETE /errors/{id}   - Delete error report (admin)

Telemetry:

	GET  /session         - New session id
	POST /telemetry       - Record event
	POST /telemetry/start - Record puzzle start
	POST /telemetry/solve - Record puzzle solve

Images:

	GET /images/* - Stored puzzle images (when an image handler is given)

Admin routes require the X-Admin-Key header.
*/
package router
