package ports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
)

type GetPlayer func(ctx context.Context, opts pubg.PlayerOptions) (*pubg.Document, error)

type GetPlayerSeasonStats func(ctx context.Context, opts pubg.PlayerSeasonStatsOptions) (*pubg.Document, error)

func MakePlayerHandler(
	getPlayer GetPlayer,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("player"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id := r.URL.Query().Get("id")
		name := r.URL.Query().Get("name")
		shard := r.URL.Query().Get("shard")

		ctx = logging.AddMetaToContext(ctx,
			slog.String("playerId", id),
			slog.String("playerName", name),
			slog.String("shard", shard),
		)
		ctx = reporting.AddExtrasToContext(ctx, map[string]string{
			"playerId":   id,
			"playerName": name,
			"shard":      shard,
		})

		doc, err := getPlayer(ctx, pubg.PlayerOptions{
			ID:    id,
			Name:  name,
			Shard: pubg.Shard(shard),
		})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}

func MakePlayerSeasonStatsHandler(
	getPlayerSeasonStats GetPlayerSeasonStats,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("playerseasonstats"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		playerID := r.PathValue("playerId")
		seasonID := r.PathValue("seasonId")
		shard := r.URL.Query().Get("shard")

		ctx = logging.AddMetaToContext(ctx,
			slog.String("playerId", playerID),
			slog.String("seasonId", seasonID),
			slog.String("shard", shard),
		)

		doc, err := getPlayerSeasonStats(ctx, pubg.PlayerSeasonStatsOptions{
			PlayerID: playerID,
			SeasonID: seasonID,
			Shard:    pubg.Shard(shard),
		})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}
