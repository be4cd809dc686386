package ports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
)

type GetStatus func(ctx context.Context) (*pubg.Document, error)

func MakeStatusHandler(
	getStatus GetStatus,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("status"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		doc, err := getStatus(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}
