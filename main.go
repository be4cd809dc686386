package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/config"
	"github.com/shardlight/shardlight/internal/ports"
	"github.com/shardlight/shardlight/internal/reporting"
	"github.com/shardlight/shardlight/internal/telemetry"
)

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	if conf.IsProduction() || conf.IsStaging() {
		shutdown, err := telemetry.SetupOTelSDK(context.Background(), "shardlight")
		if err != nil {
			fail("Failed to initialize telemetry", "error", err.Error())
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down telemetry", "error", err.Error())
			}
		}()
	}

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(conf)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	defaultShard := pubg.Shard("")
	if conf.DefaultShard() != "" {
		defaultShard, err = pubg.ParseShard(conf.DefaultShard())
		if err != nil {
			fail("Invalid default shard", "error", err.Error())
		}
	}

	// Config TTL 0 means "no caching"; the client interprets 0 as "use the
	// default", so translate.
	ttl := conf.CacheTTL()
	if ttl == 0 {
		ttl = -1
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	client, err := pubg.New(httpClient, conf.PUBGAPIKey(), defaultShard, pubg.CacheTTLs{
		Player:            ttl,
		PlayerSeasonStats: ttl,
		Seasons:           ttl,
		Match:             ttl,
		Status:            ttl,
		Tournament:        ttl,
	})
	if err != nil {
		fail("Failed to initialize PUBG client", "error", err.Error())
	}
	logger.Info("Initialized PUBG client", "defaultShard", string(client.DefaultShard()))

	http.HandleFunc(
		"GET /v1/player",
		ports.MakePlayerHandler(client.Player, logger.With("port", "player"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/player/{playerId}/season/{seasonId}",
		ports.MakePlayerSeasonStatsHandler(client.PlayerSeasonStats, logger.With("port", "playerseasonstats"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/seasons",
		ports.MakeSeasonsHandler(client.Seasons, logger.With("port", "seasons"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/match/{matchId}",
		ports.MakeMatchHandler(client.Match, logger.With("port", "match"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/match/{matchId}/telemetry",
		ports.MakeTelemetryURLHandler(client.Match, logger.With("port", "telemetryurl"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/status",
		ports.MakeStatusHandler(client.Status, logger.With("port", "status"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/tournaments",
		ports.MakeTournamentsHandler(client.Tournaments, logger.With("port", "tournaments"), sentryMiddleware),
	)

	http.HandleFunc(
		"GET /v1/tournament/{id}",
		ports.MakeTournamentHandler(client.Tournament, logger.With("port", "tournament"), sentryMiddleware),
	)

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", conf.Port()), nil)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
