package pokedex

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// FetchPokemonInput defines the request for the primary lookup
type FetchPokemonInput struct {
	// Query is the raw user input; it is normalized before use
	Query string
}

// FetchPokemonOutput defines the response for the primary lookup
type FetchPokemonOutput struct {
	Pokemon *pokemon.Pokemon
}

// AggregateMovesInput defines the request for resolving move details
type AggregateMovesInput struct {
	Pokemon *pokemon.Pokemon
}

// AggregateMovesOutput defines the response for resolving move details
type AggregateMovesOutput struct {
	Pokemon *pokemon.EnrichedPokemon
}

// SearchInput defines the request for a full search submission
type SearchInput struct {
	// SessionID groups submissions from one screen. Empty disables the
	// superseded-search check.
	SessionID string
	Query     string
}

// SearchOutput defines the response for a full search submission
type SearchOutput struct {
	Pokemon    *pokemon.EnrichedPokemon
	Generation int64
	RequestID  string
}
