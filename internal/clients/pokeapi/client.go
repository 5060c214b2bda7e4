// Package pokeapi is the client for the public PokeAPI
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultHTTPTimeout bounds every request, there is no other timeout
	DefaultHTTPTimeout = 30 * time.Second
)

// Client defines the interface for PokeAPI lookups
type Client interface {
	// GetPokemon fetches {base}/pokemon/{name}. Callers pass an already
	// normalized name. Any non-success status is reported as NotFound.
	GetPokemon(ctx context.Context, name string) (*pokemon.Pokemon, error)

	// GetMove fetches a move by the full URL found in a pokemon's move list
	GetMove(ctx context.Context, moveURL string) (*pokemon.Move, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.InvalidArgumentf("invalid base url: %s", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("http timeout must be positive")
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, name string) (*pokemon.Pokemon, error) {
	endpoint := c.baseURL + "/pokemon/" + url.PathEscape(name)

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		slog.Debug("PokeAPI lookup returned non-success status", "name", name, "status", resp.StatusCode)
		return nil, errors.NotFoundf("pokemon %s not found", name).
			WithMeta("status", resp.StatusCode)
	}

	var data PokemonData
	if err := decode(resp, &data); err != nil {
		return nil, err
	}

	return convertPokemonData(&data), nil
}

func (c *client) GetMove(ctx context.Context, moveURL string) (*pokemon.Move, error) {
	resp, err := c.get(ctx, moveURL)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		return nil, errors.Unavailablef("move request returned status %d", resp.StatusCode).
			WithReason(errors.ReasonStatus).
			WithMeta("url", moveURL)
	}

	var data MoveData
	if err := decode(resp, &data); err != nil {
		return nil, err
	}

	return convertMoveData(&data), nil
}

func (c *client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to build request").
			WithReason(errors.ReasonTransport)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WrapWithCode(ctxErr, errors.CodeCanceled, "request canceled")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "request failed").
			WithReason(errors.ReasonTransport)
	}

	return resp, nil
}

func decode(resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "malformed response body").
			WithReason(errors.ReasonDecode)
	}
	return nil
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body) // nolint:errcheck // draining for connection reuse
	_ = resp.Body.Close()                 // nolint:errcheck // nothing to do on close failure
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
