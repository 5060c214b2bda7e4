// Package pokedex implements the lookup flow: fetch a pokemon, then resolve
// its first moves concurrently.
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	searchsession "github.com/KirkDiggler/pokedex-api/internal/repositories/search_session"
)

const (
	// MaxMoveDetails is how many move references get resolved per pokemon
	MaxMoveDetails = 4

	// MsgEmptyQuery is returned when a search is submitted without a query
	MsgEmptyQuery = "enter a pokemon name or id"

	// MsgSuperseded is returned when a newer search in the same session started
	MsgSuperseded = "search superseded by a newer submission"
)

// Service defines the interface for pokedex lookups
type Service interface {
	// FetchPokemon resolves a single pokemon by name or id
	FetchPokemon(ctx context.Context, input *FetchPokemonInput) (*FetchPokemonOutput, error)

	// AggregateMoves resolves the first MaxMoveDetails moves of a pokemon
	AggregateMoves(ctx context.Context, input *AggregateMovesInput) (*AggregateMovesOutput, error)

	// Search validates the query, then fetches and aggregates
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client      pokeapi.Client
	SessionRepo searchsession.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	client      pokeapi.Client
	sessionRepo searchsession.Repository
	idGen       idgen.Generator
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:      cfg.Client,
		sessionRepo: cfg.SessionRepo,
		idGen:       cfg.IDGenerator,
	}, nil
}

// NormalizeQuery lowercases and trims a raw query
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// FetchPokemon normalizes the query and issues exactly one lookup
func (o *orchestrator) FetchPokemon(ctx context.Context, input *FetchPokemonInput) (*FetchPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := NormalizeQuery(input.Query)
	if name == "" {
		return nil, errors.InvalidArgument(MsgEmptyQuery)
	}

	slog.Debug("Fetching pokemon", "name", name)
	p, err := o.client.GetPokemon(ctx, name)
	if err != nil {
		switch {
		case errors.IsNotFound(err):
			// The message keeps the query exactly as the user typed it
			return nil, errors.WrapWithCode(err, errors.CodeNotFound,
				fmt.Sprintf(`could not find pokemon: "%s"`, input.Query)).
				WithMeta("query", input.Query)
		case errors.IsCanceled(err):
			return nil, err
		default:
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch pokemon")
		}
	}

	return &FetchPokemonOutput{
		Pokemon: p,
	}, nil
}

// AggregateMoves fetches the leading move references in parallel. Either
// every detail is attached or the call fails and nothing is.
func (o *orchestrator) AggregateMoves(ctx context.Context, input *AggregateMovesInput) (*AggregateMovesOutput, error) {
	if input == nil || input.Pokemon == nil {
		return nil, errors.InvalidArgument("pokemon is required")
	}

	refs := input.Pokemon.MoveRefs
	if len(refs) > MaxMoveDetails {
		refs = refs[:MaxMoveDetails]
	}

	slog.Debug("Loading move details", "pokemon", input.Pokemon.Name, "count", len(refs))

	// Each goroutine owns one index, so the result keeps reference order
	moves := make([]*pokemon.Move, len(refs))
	g, gCtx := errgroup.WithContext(ctx)

	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			move, err := o.client.GetMove(gCtx, ref.URL)
			if err != nil {
				if !errors.IsCanceled(err) {
					slog.Error("Failed to get move details", "move", ref.Name, "url", ref.URL, "error", err)
				}
				return errors.Wrapf(err, "failed to get move %s", ref.Name)
			}
			moves[i] = move
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WrapWithCode(ctxErr, errors.CodeCanceled, "move lookup canceled")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load move details").
			WithReason(errors.ReasonAggregate)
	}

	return &AggregateMovesOutput{
		Pokemon: &pokemon.EnrichedPokemon{
			Pokemon: input.Pokemon,
			Moves:   moves,
		},
	}, nil
}

// Search runs one submission. When a session is given, a result (or error)
// from a submission that a newer one superseded comes back as Aborted.
func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Query) == "" {
		return nil, errors.InvalidArgument(MsgEmptyQuery)
	}

	requestID := o.idGen.Generate()
	logger := slog.With("request_id", requestID, "session_id", input.SessionID)

	var generation int64
	if input.SessionID != "" {
		begin, err := o.sessionRepo.Begin(ctx, searchsession.BeginInput{SessionID: input.SessionID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to begin search")
		}
		generation = begin.Generation
	}

	logger.Debug("Searching pokemon", "query", input.Query, "generation", generation)

	enriched, err := o.lookup(ctx, input.Query)
	if staleErr := o.checkSuperseded(ctx, logger, input.SessionID, generation); staleErr != nil {
		return nil, staleErr
	}
	if err != nil {
		logger.Debug("Search failed", "code", errors.GetCode(err), "error", err)
		return nil, err
	}

	return &SearchOutput{
		Pokemon:    enriched,
		Generation: generation,
		RequestID:  requestID,
	}, nil
}

func (o *orchestrator) lookup(ctx context.Context, query string) (*pokemon.EnrichedPokemon, error) {
	fetched, err := o.FetchPokemon(ctx, &FetchPokemonInput{Query: query})
	if err != nil {
		return nil, err
	}

	aggregated, err := o.AggregateMoves(ctx, &AggregateMovesInput{Pokemon: fetched.Pokemon})
	if err != nil {
		return nil, err
	}

	return aggregated.Pokemon, nil
}

// checkSuperseded returns an Aborted error when a newer search began in the
// session after generation
func (o *orchestrator) checkSuperseded(ctx context.Context, logger *slog.Logger, sessionID string, generation int64) error {
	if sessionID == "" {
		return nil
	}

	current, err := o.sessionRepo.Current(ctx, searchsession.CurrentInput{SessionID: sessionID})
	if err != nil {
		return errors.Wrap(err, "failed to check search session")
	}

	if searchsession.IsStale(generation, current) {
		logger.Info("Discarding superseded search", "generation", generation, "latest", current.Generation)
		return errors.Aborted(MsgSuperseded).
			WithMeta("generation", generation).
			WithMeta("latest", current.Generation)
	}

	return nil
}
