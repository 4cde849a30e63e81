// Package history keeps the list of completed practice sessions, newest first.
package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/prefs"
	"github.com/alexanderramin/leettomato/internal/repository"
	"github.com/google/uuid"
)

// StorageKey is the kv namespace of the history record.
const StorageKey = "interview-practice-history"

// DisplayLimit is how many recent sessions list views show by default.
const DisplayLimit = 10

var (
	ErrEntryNotFound = errors.New("history entry not found")
	ErrAmbiguousID   = errors.New("history id prefix matches more than one entry")
)

// Service is the process-wide history holder. It loads once at construction
// and persists the full list on every mutation.
type Service struct {
	store  *prefs.Store[[]domain.HistoryEntry]
	logger *slog.Logger
	newID  func() string

	mu      sync.Mutex
	entries []domain.HistoryEntry
}

type Option func(*Service)

// WithIDGenerator overrides uuid-based entry ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

func noEntries() []domain.HistoryEntry {
	return nil
}

// NewService loads the persisted history. Missing or malformed data yields an
// empty history.
func NewService(ctx context.Context, kv repository.KVRepo, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Service{
		store:  prefs.NewStore(kv, StorageKey, noEntries, logger),
		logger: logger,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = s.store.Load(ctx)
	return s
}

// Add records a completed session. Sessions without a problem are ignored and
// return a nil entry. The entry is kept in memory even if persisting fails.
func (s *Service) Add(ctx context.Context, session domain.SessionData) (*domain.HistoryEntry, error) {
	if session.Problem == nil {
		return nil, nil
	}
	entry := domain.NewHistoryEntry(s.newID(), session)

	s.mu.Lock()
	updated := make([]domain.HistoryEntry, 0, len(s.entries)+1)
	updated = append(updated, entry)
	updated = append(updated, s.entries...)
	s.entries = updated
	s.mu.Unlock()

	if err := s.persist(ctx, updated); err != nil {
		return &entry, err
	}
	return &entry, nil
}

// Delete removes the entry with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	updated := make([]domain.HistoryEntry, 0, len(s.entries)-1)
	updated = append(updated, s.entries[:idx]...)
	updated = append(updated, s.entries[idx+1:]...)
	s.entries = updated
	s.mu.Unlock()

	return s.persist(ctx, updated)
}

// Clear empties the history and removes the persisted record entirely.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		s.logger.WarnContext(ctx, "history_clear_failed", "error", err.Error())
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Entries returns a copy of all entries, newest first.
func (s *Service) Entries() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Recent returns at most n newest entries and how many were left out.
func (s *Service) Recent(n int) ([]domain.HistoryEntry, int) {
	all := s.Entries()
	if n < 0 || len(all) <= n {
		return all, 0
	}
	return all[:n], len(all) - n
}

// Get returns the entry with exactly this id.
func (s *Service) Get(id string) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.HistoryEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Resolve finds an entry by full id or unique id prefix, as shown in
// truncated list output.
func (s *Service) Resolve(idOrPrefix string) (domain.HistoryEntry, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return domain.HistoryEntry{}, fmt.Errorf("%w: empty id", ErrEntryNotFound)
	}
	if e, err := s.Get(idOrPrefix); err == nil {
		return e, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var match *domain.HistoryEntry
	for i := range s.entries {
		if strings.HasPrefix(s.entries[i].ID, idOrPrefix) {
			if match != nil {
				return domain.HistoryEntry{}, fmt.Errorf("%w: %s", ErrAmbiguousID, idOrPrefix)
			}
			match = &s.entries[i]
		}
	}
	if match == nil {
		return domain.HistoryEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, idOrPrefix)
	}
	return *match, nil
}

func (s *Service) persist(ctx context.Context, entries []domain.HistoryEntry) error {
	if err := s.store.Save(ctx, entries); err != nil {
		s.logger.WarnContext(ctx, "history_save_failed", "entries", len(entries), "error", err.Error())
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
