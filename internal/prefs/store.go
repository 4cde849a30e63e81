// Package prefs persists a single JSON-encoded record under a fixed key.
//
// Reads never fail: a missing record yields the defaults, and a record that
// cannot be read or decoded yields the defaults plus a logged warning. Fields
// absent from the stored JSON keep their default values, so records written by
// older versions pick up newly introduced settings automatically.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/leettomato/internal/repository"
)

// Store is a typed view over one kv record.
type Store[T any] struct {
	kv       repository.KVRepo
	key      string
	defaults func() T
	logger   *slog.Logger
}

// NewStore creates a Store for key. defaults is called for every read so
// callers never share mutable default values.
func NewStore[T any](kv repository.KVRepo, key string, defaults func() T, logger *slog.Logger) *Store[T] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store[T]{kv: kv, key: key, defaults: defaults, logger: logger}
}

// Key returns the storage namespace of the record.
func (s *Store[T]) Key() string {
	return s.key
}

// Load returns the stored record merged onto the defaults.
func (s *Store[T]) Load(ctx context.Context) T {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.WarnContext(ctx, "prefs_load_failed", "key", s.key, "error", err.Error())
		}
		return s.defaults()
	}

	v := s.defaults()
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.WarnContext(ctx, "prefs_decode_failed", "key", s.key, "error", err.Error())
		return s.defaults()
	}
	return v
}

// Save replaces the stored record with v.
func (s *Store[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.key, err)
	}
	return s.kv.Set(ctx, s.key, string(data))
}

// Delete removes the stored record entirely.
func (s *Store[T]) Delete(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}
