package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/leettomato/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite covers a CLI process reading history
// while the TUI writes settings and history records.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	repo := NewSQLiteKVRepo(newConcurrentTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "interview-practice-history", "[]"))

	var wg sync.WaitGroup
	errs := make(chan error, 64)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := repo.Set(ctx, "leettomato-settings", fmt.Sprintf(`{"designThresholdMin":%d}`, i+1)); err != nil {
				errs <- err
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				v, err := repo.Get(ctx, "interview-practice-history")
				if err != nil {
					errs <- err
					return
				}
				if v != "[]" {
					errs <- fmt.Errorf("unexpected value %q", v)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent access: %v", err)
	}

	got, err := repo.Get(ctx, "leettomato-settings")
	require.NoError(t, err)
	assert.Equal(t, `{"designThresholdMin":20}`, got)
}

func TestConcurrentAccess_DeleteWhileReading(t *testing.T) {
	repo := NewSQLiteKVRepo(newConcurrentTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "k", "v"))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = repo.Delete(ctx, "k")
	}()
	go func() {
		defer wg.Done()
		_, err := repo.Get(ctx, "k")
		if err != nil && !errors.Is(err, ErrNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
	}()
	wg.Wait()

	_, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
