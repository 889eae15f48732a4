package session

import (
	"errors"
	"testing"

	"github.com/trainpartner/tpx/internal/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewStore(db)
}

func TestStore(t *testing.T) {
	t.Run("Current on empty slot", func(t *testing.T) {
		store := newTestStore(t)
		if _, err := store.Current(); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("Save and Current", func(t *testing.T) {
		store := newTestStore(t)

		sess, err := store.Save("alice", "tok-123")
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if sess.ID == "" {
			t.Error("expected generated session id")
		}

		current, err := store.Current()
		if err != nil {
			t.Fatalf("current failed: %v", err)
		}
		if current.Username != "alice" || current.AccessToken != "tok-123" {
			t.Errorf("unexpected session: %+v", current)
		}
	})

	t.Run("Save replaces the slot", func(t *testing.T) {
		store := newTestStore(t)

		if _, err := store.Save("alice", "tok-1"); err != nil {
			t.Fatalf("first save failed: %v", err)
		}
		if _, err := store.Save("bob", "tok-2"); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		current, err := store.Current()
		if err != nil {
			t.Fatalf("current failed: %v", err)
		}
		if current.Username != "bob" || current.AccessToken != "tok-2" {
			t.Errorf("expected the latest session, got %+v", current)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := newTestStore(t)

		if _, err := store.Save("alice", "tok-1"); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		if _, err := store.Current(); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected empty slot after clear, got %v", err)
		}

		// Clearing again is fine.
		if err := store.Clear(); err != nil {
			t.Errorf("second clear failed: %v", err)
		}
	})
}
