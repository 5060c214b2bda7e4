package main

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/config"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/pokedex-api/internal/redis"
	searchsession "github.com/KirkDiggler/pokedex-api/internal/repositories/search_session"
)

// loadConfig reads the config file and applies the shared flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if baseURL != "" {
		cfg.PokeAPI.BaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger from the log section
func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// newSessionRepo returns the redis store when configured, otherwise an
// in-process one. The returned func releases the redis client.
func newSessionRepo(cfg *config.Config) (searchsession.Repository, func(), error) {
	if !cfg.UseRedis() {
		repo, err := newInMemorySessions(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}

	repo, err := searchsession.NewRedisRepository(&searchsession.RedisConfig{
		Client: client,
		TTL:    cfg.Redis.SessionTTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return repo, cleanup, nil
}

func newInMemorySessions(cfg *config.Config) (*searchsession.InMemoryRepository, error) {
	return searchsession.NewInMemoryRepository(&searchsession.InMemoryConfig{
		Clock: clock.New(),
		TTL:   cfg.Redis.SessionTTL,
	})
}

// newPokedexService wires the PokeAPI client into the orchestrator
func newPokedexService(cfg *config.Config, sessions searchsession.Repository) (pokedex.Service, error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.HTTPTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pokeapi client")
	}

	return pokedex.NewOrchestrator(&pokedex.Config{
		Client:      client,
		SessionRepo: sessions,
		IDGenerator: idgen.NewUUID("search"),
	})
}
