package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
)

type GetMatch func(ctx context.Context, opts pubg.MatchOptions) (*pubg.Document, error)

func MakeMatchHandler(
	getMatch GetMatch,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("match"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		matchID := r.PathValue("matchId")
		shard := r.URL.Query().Get("shard")

		ctx = logging.AddMetaToContext(ctx,
			slog.String("matchId", matchID),
			slog.String("shard", shard),
		)

		doc, err := getMatch(ctx, pubg.MatchOptions{ID: matchID, Shard: pubg.Shard(shard)})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}

type telemetryResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// MakeTelemetryURLHandler resolves a match's telemetry asset URL instead of
// returning the whole match document.
func MakeTelemetryURLHandler(
	getMatch GetMatch,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("telemetryurl"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		matchID := r.PathValue("matchId")
		shard := r.URL.Query().Get("shard")

		ctx = logging.AddMetaToContext(ctx,
			slog.String("matchId", matchID),
			slog.String("shard", shard),
		)

		doc, err := getMatch(ctx, pubg.MatchOptions{ID: matchID, Shard: pubg.Shard(shard)})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		url, ok := doc.TelemetryURL()
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"cause":"no telemetry asset"}`))
			return
		}

		response, err := json.Marshal(telemetryResponse{Success: true, URL: url})
		if err != nil {
			reporting.Report(ctx, fmt.Errorf("failed to marshal telemetry response: %w", err))
			writeError(ctx, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}

	return middleware(handler)
}
