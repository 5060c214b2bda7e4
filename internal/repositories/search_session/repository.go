// Package searchsession tracks the latest search generation per session
package searchsession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=searchsessionmock github.com/KirkDiggler/pokedex-api/internal/repositories/search_session Repository

// DefaultTTL is how long an idle session keeps its counter
const DefaultTTL = 15 * time.Minute

// BeginInput contains parameters for starting a search
type BeginInput struct {
	SessionID string
}

// BeginOutput carries the generation assigned to the new search
type BeginOutput struct {
	Generation int64
}

// CurrentInput contains parameters for reading the latest generation
type CurrentInput struct {
	SessionID string
}

// CurrentOutput carries the latest generation, 0 for an unknown session
type CurrentOutput struct {
	Generation int64
}

// Repository stores one counter per session. It never stores queries or
// results; only the ordering of submissions.
type Repository interface {
	// Begin atomically increments and returns the session generation
	Begin(ctx context.Context, input BeginInput) (*BeginOutput, error)

	// Current returns the latest generation handed out for the session
	Current(ctx context.Context, input CurrentInput) (*CurrentOutput, error)
}

// IsStale reports whether a search that began at generation has been
// superseded by a later Begin on the same session.
func IsStale(generation int64, current *CurrentOutput) bool {
	return current != nil && current.Generation > generation
}
