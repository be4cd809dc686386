package ports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
)

type GetSeasons func(ctx context.Context, opts pubg.SeasonsOptions) (*pubg.Document, error)

func MakeSeasonsHandler(
	getSeasons GetSeasons,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("seasons"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		shard := r.URL.Query().Get("shard")
		ctx = logging.AddMetaToContext(ctx, slog.String("shard", shard))

		doc, err := getSeasons(ctx, pubg.SeasonsOptions{Shard: pubg.Shard(shard)})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}
