// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identifier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/puzzlebox/models"
)

// Paging limits for ListPuzzles
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// sortColumns maps recognized sort keys to columns. Column names cannot be
// bound as parameters, so only these are ever interpolated.
var sortColumns = map[string]string{
	models.SortByDate: "created_at",
}

// CreatePuzzle stores a puzzle under its display code and returns the code.
// Resubmitting content that is already stored returns the existing code
// without uploading or inserting anything.
func (s *Service) CreatePuzzle(ctx context.Context, title, puzzleJSON, solutionJSON string, image []byte) (string, error) {
	if puzzleJSON == "" {
		return "", ErrEmptyPuzzle
	}

	code := DisplayCode(puzzleJSON)

	existing, err := s.GetPuzzle(ctx, code)
	if err != nil {
		return "", err
	}
	if existing != nil {
		s.log.Info("puzzle already exists", "code", code)
		return code, nil
	}

	url, err := s.images.Upload(ctx, image, code)
	if err != nil {
		return "", fmt.Errorf("failed to upload puzzle image: %w", err)
	}

	// A concurrent insert of the same content loses to the primary key.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzle (display_code, created_at, puzzle_json, solution_json, url, title)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (display_code) DO NOTHING
	`, code, s.timestamp(), puzzleJSON, solutionJSON, url, nullString(title))
	if err != nil {
		return "", fmt.Errorf("failed to insert puzzle: %w", err)
	}

	s.log.Info("puzzle created", "code", code, "url", url)

	return code, nil
}

// GetPuzzle returns the puzzle stored under code, or nil if there is none.
func (s *Service) GetPuzzle(ctx context.Context, code string) (*models.Puzzle, error) {
	var p models.Puzzle
	err := s.db.QueryRowContext(ctx, `
		SELECT display_code, created_at, puzzle_json, solution_json, url, title
		FROM puzzle
		WHERE display_code = $1
	`, NormalizeCode(code)).Scan(
		&p.Code, &p.CreatedAt, &p.PuzzleJSON, &p.SolutionJSON, &p.URL, &p.Title,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzle: %w", err)
	}
	return &p, nil
}

// ListPuzzles returns one page of puzzles ordered by sortKey. An unknown
// sort key is logged and yields an empty page, not an error.
func (s *Service) ListPuzzles(ctx context.Context, sortKey, order string, offset, limit int) ([]models.Puzzle, error) {
	column, ok := sortColumns[sortKey]
	if !ok {
		s.log.Warn("unknown puzzle sort key", "sort", sortKey)
		return []models.Puzzle{}, nil
	}

	direction := "ASC"
	if order == models.OrderDesc {
		direction = "DESC"
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	query := fmt.Sprintf(`
		SELECT display_code, created_at, puzzle_json, solution_json, url, title
		FROM puzzle
		ORDER BY %s %s, display_code %s
		LIMIT $1 OFFSET $2
	`, column, direction, direction)

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzles: %w", err)
	}
	defer rows.Close()

	puzzles := []models.Puzzle{}
	for rows.Next() {
		var p models.Puzzle
		if err := rows.Scan(&p.Code, &p.CreatedAt, &p.PuzzleJSON, &p.SolutionJSON, &p.URL, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle: %w", err)
		}
		puzzles = append(puzzles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate puzzles: %w", err)
	}

	return puzzles, nil
}

// DeletePuzzle removes the puzzle stored under code. Deleting a code that
// does not exist is not an error.
func (s *Service) DeletePuzzle(ctx context.Context, code string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM puzzle WHERE display_code = $1", NormalizeCode(code))
	if err != nil {
		return fmt.Errorf("failed to delete puzzle: %w", err)
	}

	n, _ := res.RowsAffected()
	s.log.Info("puzzle deleted", "code", code, "rows", n)

	return nil
}
