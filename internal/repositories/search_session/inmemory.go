package searchsession

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

type sessionEntry struct {
	generation int64
	expiresAt  time.Time
}

// InMemoryRepository keeps session counters in process.
// Used when the server runs without redis.
type InMemoryRepository struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	sessions map[string]*sessionEntry
}

// NewInMemoryRepository creates an in-memory generation store
func NewInMemoryRepository(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.InvalidArgument("clock is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &InMemoryRepository{
		clock:    cfg.Clock,
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
	}, nil
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Begin atomically increments and returns the session generation
func (r *InMemoryRepository) Begin(_ context.Context, input BeginInput) (*BeginOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.evictExpired(now)

	entry, ok := r.sessions[input.SessionID]
	if !ok {
		entry = &sessionEntry{}
		r.sessions[input.SessionID] = entry
	}
	entry.generation++
	entry.expiresAt = now.Add(r.ttl)

	return &BeginOutput{Generation: entry.generation}, nil
}

// Current returns the latest generation handed out for the session
func (r *InMemoryRepository) Current(_ context.Context, input CurrentInput) (*CurrentOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[input.SessionID]
	if !ok || !r.clock.Now().Before(entry.expiresAt) {
		return &CurrentOutput{}, nil
	}

	return &CurrentOutput{Generation: entry.generation}, nil
}

func (r *InMemoryRepository) evictExpired(now time.Time) {
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
