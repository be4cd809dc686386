package ports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
)

type GetTournaments func(ctx context.Context) (*pubg.Document, error)

type GetTournament func(ctx context.Context, opts pubg.TournamentOptions) (*pubg.Document, error)

func MakeTournamentsHandler(
	getTournaments GetTournaments,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("tournaments"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		doc, err := getTournaments(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}

func MakeTournamentHandler(
	getTournament GetTournament,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("tournament"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tournamentID := r.PathValue("id")
		ctx = logging.AddMetaToContext(ctx, slog.String("tournamentId", tournamentID))

		doc, err := getTournament(ctx, pubg.TournamentOptions{ID: tournamentID})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeDocument(w, doc)
	}

	return middleware(handler)
}
