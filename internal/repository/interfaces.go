package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored record.
var ErrNotFound = errors.New("not found")

// KVRepo stores namespaced text records. Values are opaque to the repository;
// callers encode and decode them.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
