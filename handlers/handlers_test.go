// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/puzzlebox/cliparse"
	"github.com/danielhkuo/puzzlebox/identifier"
	"github.com/danielhkuo/puzzlebox/testutil"
)

var testPNG = []byte("\x89PNG\r\n\x1a\n")

type testEnv struct {
	db     *sql.DB
	svc    *identifier.Service
	images *testutil.FakeImageStore
	cfg    cliparse.Config
}

func setupHandlers(t *testing.T) testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	images := testutil.NewFakeImageStore()
	svc := identifier.New(db, images,
		identifier.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	return testEnv{db: db, svc: svc, images: images, cfg: testutil.GetTestConfig()}
}

// withURLParam attaches a chi route parameter to req
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
