package store

import (
	"context"
	"errors"
	"testing"

	"github.com/austinblanke891/metrodupe/internal/game"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	r := &game.Round{ID: "r1", Phase: game.PhaseInProgress, Remaining: game.MaxGuesses}
	if err := m.Save(ctx, "sess-1", r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != "r1" {
		t.Errorf("ID = %q, want r1", got.ID)
	}

	// Saving again replaces the session's round.
	r2 := &game.Round{ID: "r2", Phase: game.PhaseInProgress, Remaining: game.MaxGuesses}
	if err := m.Save(ctx, "sess-1", r2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = m.Get(ctx, "sess-1")
	if got.ID != "r2" {
		t.Errorf("ID = %q, want replacement r2", got.ID)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	m := NewMemoryStore()
	_, err := m.Get(context.Background(), "unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
