// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imagestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyImage = errors.New("image is empty")
	ErrInvalidKey = errors.New("invalid image key")
)

// Store uploads puzzle preview images and returns the public URL.
type Store interface {
	Upload(ctx context.Context, data []byte, key string) (string, error)
}

// FSStore keeps images on local disk and serves them over HTTP.
type FSStore struct {
	dir     string
	baseURL string
}

// NewFSStore creates dir if needed. baseURL is the public prefix the
// files are served under, e.g. "/images" or "https://cdn.example.com/p".
func NewFSStore(dir, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	return &FSStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload writes data to <dir>/<key><ext>, overwriting any previous file,
// and returns <baseURL>/<key><ext>.
func (s *FSStore) Upload(ctx context.Context, data []byte, key string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := key + extension(data)
	path := filepath.Join(s.dir, name)

	// Write-then-rename so a concurrent reader never sees a partial file.
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	slog.Info("image stored", "key", key, "file", name, "bytes", len(data))

	return s.baseURL + "/" + name, nil
}

// Handler serves stored images. Mount it with the base URL prefix stripped.
func (s *FSStore) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}

func extension(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
