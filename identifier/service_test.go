// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identifier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/puzzlebox/models"
	"github.com/danielhkuo/puzzlebox/testutil"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc    *Service
	db     *sql.DB
	images *testutil.FakeImageStore
}

func setupService(t *testing.T) fixture {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	images := testutil.NewFakeImageStore()
	svc := New(conn, images,
		WithClock(testutil.NewClock(testStart).Now),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return fixture{svc: svc, db: conn, images: images}
}

var png = []byte("\x89PNG\r\n\x1a\n")

func TestCreatePuzzle(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	code, err := f.svc.CreatePuzzle(ctx, "Sunday", `{"grid":"abc"}`, `{"answer":"xyz"}`, png)
	require.NoError(t, err)
	assert.Equal(t, DisplayCode(`{"grid":"abc"}`), code)

	p, err := f.svc.GetPuzzle(ctx, code)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, code, p.Code)
	assert.Equal(t, `{"grid":"abc"}`, p.PuzzleJSON)
	assert.Equal(t, `{"answer":"xyz"}`, p.SolutionJSON)
	require.NotNil(t, p.Title)
	assert.Equal(t, "Sunday", *p.Title)
	require.NotNil(t, p.URL)
	assert.Equal(t, "https://images.test/"+code+".png", *p.URL)
	assert.True(t, p.CreatedAt.Equal(testStart), "created_at = %v", p.CreatedAt)

	assert.Equal(t, png, f.images.Uploads[code])
}

func TestCreatePuzzleIdempotent(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	first, err := f.svc.CreatePuzzle(ctx, "one", "content", "solution", png)
	require.NoError(t, err)

	// Same content, different metadata: still the same puzzle.
	second, err := f.svc.CreatePuzzle(ctx, "two", "content", "other solution", []byte("other"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, testutil.CountRows(t, f.db, "puzzle"))
	assert.Equal(t, png, f.images.Uploads[first], "existing puzzle must not re-upload")

	p, err := f.svc.GetPuzzle(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "one", *p.Title)
	assert.Equal(t, "solution", p.SolutionJSON)
}

func TestCreatePuzzleConcurrentIdentical(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	codes := make([]string, 8)
	errs := make([]error, 8)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i], errs[i] = f.svc.CreatePuzzle(ctx, "", "same content", "s", png)
		}(i)
	}
	wg.Wait()

	for i := range codes {
		require.NoError(t, errs[i])
		assert.Equal(t, codes[0], codes[i])
	}
	assert.Equal(t, 1, testutil.CountRows(t, f.db, "puzzle"))
}

func TestCreatePuzzleEmptyTitleStoredAsNull(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	code, err := f.svc.CreatePuzzle(ctx, "", "untitled", "s", png)
	require.NoError(t, err)

	p, err := f.svc.GetPuzzle(ctx, code)
	require.NoError(t, err)
	assert.Nil(t, p.Title)
}

func TestCreatePuzzleErrors(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	_, err := f.svc.CreatePuzzle(ctx, "t", "", "s", png)
	assert.ErrorIs(t, err, ErrEmptyPuzzle)

	uploadErr := errors.New("bucket unavailable")
	f.images.Err = uploadErr
	_, err = f.svc.CreatePuzzle(ctx, "t", "fresh content", "s", png)
	assert.ErrorIs(t, err, uploadErr)
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "puzzle"), "failed upload must not insert")
}

func TestGetPuzzle(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	p, err := f.svc.GetPuzzle(ctx, "ZZZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, p)

	code, err := f.svc.CreatePuzzle(ctx, "", "abc", "s", png)
	require.NoError(t, err)
	require.Equal(t, "BA78C6BF", code)

	// Lower case and the unsubstituted hex prefix resolve to the same row.
	for _, lookup := range []string{"ba78c6bf", "BA7816BF", " BA78C6BF"} {
		p, err := f.svc.GetPuzzle(ctx, lookup)
		require.NoError(t, err)
		require.NotNil(t, p, "lookup %q", lookup)
		assert.Equal(t, code, p.Code)
	}
}

func TestListPuzzles(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	var created []string
	for i := 0; i < 5; i++ {
		code, err := f.svc.CreatePuzzle(ctx, "", fmt.Sprintf("puzzle-%d", i), "s", png)
		require.NoError(t, err)
		created = append(created, code)
	}

	codes := func(ps []models.Puzzle) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Code)
		}
		return out
	}

	asc, err := f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderAsc, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, created, codes(asc))

	desc, err := f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderDesc, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{created[4], created[3], created[2], created[1], created[0]}, codes(desc))

	page, err := f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderAsc, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, created[1:3], codes(page))

	// Any order other than "desc" is ascending.
	other, err := f.svc.ListPuzzles(ctx, models.SortByDate, "sideways", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, created, codes(other))

	past, err := f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderAsc, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestListPuzzlesPaging(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	for i := 0; i < DefaultPageSize+5; i++ {
		_, err := f.svc.CreatePuzzle(ctx, "", fmt.Sprintf("p%d", i), "s", png)
		require.NoError(t, err)
	}

	all, err := f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderAsc, -3, 0)
	require.NoError(t, err)
	assert.Len(t, all, DefaultPageSize, "limit <= 0 uses the default page size")

	capped, err := f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderAsc, 0, MaxPageSize+50)
	require.NoError(t, err)
	assert.Len(t, capped, DefaultPageSize+5)
}

func TestListPuzzlesUnknownSortKey(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	_, err := f.svc.CreatePuzzle(ctx, "", "content", "s", png)
	require.NoError(t, err)

	ps, err := f.svc.ListPuzzles(ctx, "unknown-key", models.OrderAsc, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, ps)
	assert.Empty(t, ps)
}

func TestDeletePuzzle(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	keep, err := f.svc.CreatePuzzle(ctx, "", "keep", "s", png)
	require.NoError(t, err)
	drop, err := f.svc.CreatePuzzle(ctx, "", "drop", "s", png)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePuzzle(ctx, drop))

	p, err := f.svc.GetPuzzle(ctx, drop)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = f.svc.GetPuzzle(ctx, keep)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestDeletePuzzleMissingIsNoop(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	_, err := f.svc.CreatePuzzle(ctx, "", "content", "s", png)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePuzzle(ctx, "ZZZZZZZZ"))
	assert.Equal(t, 1, testutil.CountRows(t, f.db, "puzzle"))
}

func TestStorageErrorsPropagate(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	require.NoError(t, f.db.Close())

	_, err := f.svc.GetPuzzle(ctx, "ABCDEFGH")
	assert.Error(t, err)

	_, err = f.svc.CreatePuzzle(ctx, "", "content", "s", png)
	assert.Error(t, err)

	_, err = f.svc.ListPuzzles(ctx, models.SortByDate, models.OrderAsc, 0, 10)
	assert.Error(t, err)

	assert.Error(t, f.svc.DeletePuzzle(ctx, "ABCDEFGH"))
	assert.Error(t, f.svc.AddFeedback(ctx, "", "x"))

	_, err = f.svc.ListErrors(ctx)
	assert.Error(t, err)
}
