// Package v1alpha1 handles the pokedex grpc service interface
package v1alpha1

import (
	"context"
	"strings"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
)

// HandlerConfig holds dependencies for the pokedex handler
type HandlerConfig struct {
	PokedexService pokedex.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.PokedexService == nil {
		return errors.InvalidArgument("pokedex service is required")
	}
	return nil
}

// Handler implements the pokedex gRPC service
type Handler struct {
	pokedexv1alpha1.UnimplementedPokedexServiceServer
	pokedexService pokedex.Service
}

// NewHandler creates a new pokedex handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		pokedexService: cfg.PokedexService,
	}, nil
}

// Search looks up a pokemon and returns it with its first moves resolved
func (h *Handler) Search(
	ctx context.Context,
	req *pokedexv1alpha1.SearchRequest,
) (*pokedexv1alpha1.SearchResponse, error) {
	if strings.TrimSpace(req.GetQuery()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(pokedex.MsgEmptyQuery))
	}

	output, err := h.pokedexService.Search(ctx, &pokedex.SearchInput{
		SessionID: req.GetSessionID(),
		Query:     req.GetQuery(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pokedexv1alpha1.SearchResponse{
		Pokemon:    ConvertEnrichedPokemon(output.Pokemon),
		Generation: output.Generation,
		RequestID:  output.RequestID,
	}, nil
}
