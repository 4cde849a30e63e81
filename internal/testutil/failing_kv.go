package testutil

import (
	"context"
	"errors"
)

// ErrInjected is the error returned by FailingKV operations.
var ErrInjected = errors.New("injected storage failure")

// KV mirrors repository.KVRepo; declared here so repository tests can use
// testutil without an import cycle.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FailingKV wraps a KVRepo and fails the selected operations, simulating a
// full disk or a locked database.
type FailingKV struct {
	Inner      KV
	FailGet    bool
	FailSet    bool
	FailDelete bool

	SetCalls int
}

func (f *FailingKV) Get(ctx context.Context, key string) (string, error) {
	if f.FailGet {
		return "", ErrInjected
	}
	return f.Inner.Get(ctx, key)
}

func (f *FailingKV) Set(ctx context.Context, key, value string) error {
	f.SetCalls++
	if f.FailSet {
		return ErrInjected
	}
	return f.Inner.Set(ctx, key, value)
}

func (f *FailingKV) Delete(ctx context.Context, key string) error {
	if f.FailDelete {
		return ErrInjected
	}
	return f.Inner.Delete(ctx, key)
}
