package pubg

import (
	"context"
	"fmt"
)

type SeasonsOptions struct {
	Shard Shard
}

func (c *Client) Seasons(ctx context.Context, opts SeasonsOptions) (*Document, error) {
	shard, err := c.resolveShard(opts.Shard)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/shards/%s/seasons", shard)
	return c.getDocument(ctx, resourceSeasons, path)
}
