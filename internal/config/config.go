// Package config loads pokedex configuration from yaml and the environment
package config

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	searchsession "github.com/KirkDiggler/pokedex-api/internal/repositories/search_session"
)

// Environment variables read by Load
const (
	EnvBaseURL   = "POKEDEX_POKEAPI_BASE_URL"
	EnvRedisAddr = "POKEDEX_REDIS_ADDR"
	EnvLogLevel  = "POKEDEX_LOG_LEVEL"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultPort is the default gRPC port
const DefaultPort = 50051

// Config holds the process configuration
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi,omitempty"`
	Redis   RedisConfig   `yaml:"redis,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Port int `yaml:"port,omitempty"`
}

// PokeAPIConfig holds the remote catalogue settings
type PokeAPIConfig struct {
	BaseURL     string        `yaml:"base_url,omitempty"`
	HTTPTimeout time.Duration `yaml:"http_timeout,omitempty"`
}

// RedisConfig holds the search session store settings. An empty Addr keeps
// sessions in process.
type RedisConfig struct {
	Addr       string        `yaml:"addr,omitempty"`
	SessionTTL time.Duration `yaml:"session_ttl,omitempty"`
}

// LogConfig holds the slog handler settings
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: DefaultPort,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:     pokeapi.DefaultBaseURL,
			HTTPTimeout: pokeapi.DefaultHTTPTimeout,
		},
		Redis: RedisConfig{
			SessionTTL: searchsession.DefaultTTL,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
	}
}

// Load reads the yaml file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file not found: %s", path)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing config file")
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.PokeAPI.BaseURL = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)

	if c.PokeAPI.BaseURL == "" {
		vb.RequiredField("pokeapi.base_url")
	} else if u, err := url.Parse(c.PokeAPI.BaseURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		vb.Field("pokeapi.base_url", "must be an absolute http(s) url")
	}
	if c.PokeAPI.HTTPTimeout < 0 {
		vb.Field("pokeapi.http_timeout", "must not be negative")
	}
	if c.Redis.SessionTTL < 0 {
		vb.Field("redis.session_ttl", "must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("log.format", "must be %s or %s", LogFormatText, LogFormatJSON)
	}

	return vb.Build()
}

// UseRedis reports whether search sessions live in redis
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// ParseLevel maps a level name to its slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}
