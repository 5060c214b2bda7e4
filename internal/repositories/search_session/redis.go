package searchsession

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokedex-api/internal/redis"
)

const (
	// Key pattern: search_session:{session_id}
	sessionKeyPrefix = "search_session:"

	errSessionIDEmpty = "session ID cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed generation store
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Begin(ctx context.Context, input BeginInput) (*BeginOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := buildKey(input.SessionID)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to begin search session")
	}

	return &BeginOutput{
		Generation: incr.Val(),
	}, nil
}

func (r *redisRepository) Current(ctx context.Context, input CurrentInput) (*CurrentOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	generation, err := r.client.Get(ctx, buildKey(input.SessionID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return &CurrentOutput{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read search session")
	}

	return &CurrentOutput{
		Generation: generation,
	}, nil
}

func buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
