// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Each browser session owns exactly one Round at a time; this keeps them
// keyed by session ID for the life of the process. The shared Catalog is
// read-only, so the only state that needs guarding is the rounds map.
//
// Characteristics:
//   - Stores *game.Round objects keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts; a round has no persistence
//     beyond the session, by design.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/austinblanke891/metrodupe/internal/game"
)

// ErrNotFound is returned by Get for an unknown session.
var ErrNotFound = errors.New("round not found")

// Store defines per-session round persistence.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or replaces the session's round.
	Save(ctx context.Context, sessionID string, r *game.Round) error

	// Get retrieves the session's current round.
	// Returns ErrNotFound if the session has no round.
	Get(ctx context.Context, sessionID string) (*game.Round, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds map
	rounds map[string]*game.Round // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Save adds or replaces the round for a session.
func (m *memory) Save(ctx context.Context, sessionID string, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[sessionID] = r
	return nil
}

// Get looks up a session's round.
func (m *memory) Get(ctx context.Context, sessionID string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[sessionID]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}
