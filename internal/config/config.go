package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

const defaultPort = "8080"
const defaultCacheTTL = 60 * time.Second

type Config struct {
	pubgAPIKey   string
	defaultShard string
	sentryDSN    string
	port         string
	cacheTTL     time.Duration
	env          environment
}

func (c *Config) PUBGAPIKey() string {
	return c.pubgAPIKey
}

func (c *Config) DefaultShard() string {
	return c.defaultShard
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) CacheTTL() time.Duration {
	return c.cacheTTL
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{env: %s, defaultShard: %s, port: %s, cacheTTL: %s, ...}", string(c.env), c.defaultShard, c.port, c.cacheTTL)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("SHARDLIGHT_ENVIRONMENT")
	if !ok {
		return missingKey("SHARDLIGHT_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: SHARDLIGHT_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}

	pubgAPIKey := os.Getenv("PUBG_API_KEY")
	defaultShard := os.Getenv("DEFAULT_SHARD")
	sentryDSN := os.Getenv("SENTRY_DSN")

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	cacheTTL := defaultCacheTTL
	if rawTTL := os.Getenv("CACHE_TTL_SECONDS"); rawTTL != "" {
		seconds, err := strconv.Atoi(rawTTL)
		if err != nil {
			return Config{}, fmt.Errorf("%w: CACHE_TTL_SECONDS (%s)", ErrInvalidValue, rawTTL)
		}
		cacheTTL = time.Duration(seconds) * time.Second
	}

	if env == production || env == staging {
		if pubgAPIKey == "" {
			return missingKey("PUBG_API_KEY")
		}
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	return Config{
		pubgAPIKey:   pubgAPIKey,
		defaultShard: defaultShard,
		sentryDSN:    sentryDSN,
		port:         port,
		cacheTTL:     cacheTTL,
		env:          env,
	}, nil
}
