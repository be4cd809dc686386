package pubg

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shardlight/shardlight/internal/adapters/cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	apiHost   = "https://api.pubg.com"
	userAgent = "shardlight/0.1.0 (+https://github.com/shardlight/shardlight)"
)

const defaultCacheTTL = 60 * time.Second

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CacheTTLs overrides the per-resource cache TTLs. A zero value means the
// 60 second default; a negative value disables caching for that resource.
type CacheTTLs struct {
	Player            time.Duration
	PlayerSeasonStats time.Duration
	Seasons           time.Duration
	Match             time.Duration
	Status            time.Duration
	Tournament        time.Duration
}

type resource string

const (
	resourcePlayer            resource = "player"
	resourcePlayerSeasonStats resource = "player_season_stats"
	resourceSeasons           resource = "seasons"
	resourceMatch             resource = "match"
	resourceStatus            resource = "status"
	resourceTournament        resource = "tournament"
)

// Client wraps the PUBG REST API. Each instance owns one result cache per
// resource type; both successful payloads and captured errors live there for
// the configured TTL.
type Client struct {
	httpClient   HttpClient
	apiKey       string
	defaultShard Shard

	caches map[resource]cache.ResultCache[*Document]

	metrics clientMetricsCollection
}

func New(httpClient HttpClient, apiKey string, defaultShard Shard, ttls CacheTTLs) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if defaultShard == "" {
		defaultShard = ShardSteam
	} else {
		parsed, err := ParseShard(string(defaultShard))
		if err != nil {
			return nil, err
		}
		defaultShard = parsed
	}

	meter := otel.Meter("pubg/client")
	metrics, err := setupClientMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	resolveTTL := func(ttl time.Duration) time.Duration {
		if ttl == 0 {
			return defaultCacheTTL
		}
		return ttl
	}

	return &Client{
		httpClient:   httpClient,
		apiKey:       apiKey,
		defaultShard: defaultShard,
		caches: map[resource]cache.ResultCache[*Document]{
			resourcePlayer:            cache.NewTTLResultCache[*Document](resolveTTL(ttls.Player)),
			resourcePlayerSeasonStats: cache.NewTTLResultCache[*Document](resolveTTL(ttls.PlayerSeasonStats)),
			resourceSeasons:           cache.NewTTLResultCache[*Document](resolveTTL(ttls.Seasons)),
			resourceMatch:             cache.NewTTLResultCache[*Document](resolveTTL(ttls.Match)),
			resourceStatus:            cache.NewTTLResultCache[*Document](resolveTTL(ttls.Status)),
			resourceTournament:        cache.NewTTLResultCache[*Document](resolveTTL(ttls.Tournament)),
		},
		metrics: metrics,
	}, nil
}

func (c *Client) DefaultShard() Shard {
	return c.defaultShard
}

type clientMetricsCollection struct {
	requestCount metric.Int64Counter
}

func setupClientMetrics(meter metric.Meter) (clientMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("pubg/client/requests")
	if err != nil {
		return clientMetricsCollection{}, fmt.Errorf("failed to create metric: %w", err)
	}

	return clientMetricsCollection{
		requestCount: requestCount,
	}, nil
}
