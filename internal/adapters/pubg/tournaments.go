package pubg

import (
	"context"
	"fmt"
	"net/url"
)

// Tournament endpoints are unsharded.

func (c *Client) Tournaments(ctx context.Context) (*Document, error) {
	return c.getDocument(ctx, resourceTournament, "/tournaments")
}

type TournamentOptions struct {
	ID string
}

func (c *Client) Tournament(ctx context.Context, opts TournamentOptions) (*Document, error) {
	if opts.ID == "" {
		return nil, fmt.Errorf("%w: tournament id", ErrMissingParameter)
	}

	path := fmt.Sprintf("/tournaments/%s", url.PathEscape(opts.ID))
	return c.getDocument(ctx, resourceTournament, path)
}
