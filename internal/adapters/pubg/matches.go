package pubg

import (
	"context"
	"fmt"
	"net/url"
)

type MatchOptions struct {
	ID    string
	Shard Shard
}

func (c *Client) Match(ctx context.Context, opts MatchOptions) (*Document, error) {
	if opts.ID == "" {
		return nil, fmt.Errorf("%w: match id", ErrMissingParameter)
	}

	shard, err := c.resolveShard(opts.Shard)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/shards/%s/matches/%s", shard, url.PathEscape(opts.ID))
	return c.getDocument(ctx, resourceMatch, path)
}
