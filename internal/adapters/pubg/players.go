package pubg

import (
	"context"
	"fmt"
	"net/url"
)

// PlayerOptions identifies a player either by account ID or by exact name.
// Exactly one of the two is needed; ID wins when both are set.
type PlayerOptions struct {
	ID    string
	Name  string
	Shard Shard
}

func (c *Client) Player(ctx context.Context, opts PlayerOptions) (*Document, error) {
	if opts.ID == "" && opts.Name == "" {
		return nil, fmt.Errorf("%w: player id or name", ErrMissingParameter)
	}

	shard, err := c.resolveShard(opts.Shard)
	if err != nil {
		return nil, err
	}

	var path string
	if opts.ID != "" {
		path = fmt.Sprintf("/shards/%s/players/%s", shard, url.PathEscape(opts.ID))
	} else {
		path = fmt.Sprintf("/shards/%s/players?filter[playerNames]=%s", shard, url.QueryEscape(opts.Name))
	}

	return c.getDocument(ctx, resourcePlayer, path)
}

type PlayerSeasonStatsOptions struct {
	PlayerID string
	SeasonID string
	Shard    Shard
}

func (c *Client) PlayerSeasonStats(ctx context.Context, opts PlayerSeasonStatsOptions) (*Document, error) {
	if opts.PlayerID == "" {
		return nil, fmt.Errorf("%w: player id", ErrMissingParameter)
	}
	if opts.SeasonID == "" {
		return nil, fmt.Errorf("%w: season id", ErrMissingParameter)
	}

	shard, err := c.resolveShard(opts.Shard)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/shards/%s/players/%s/seasons/%s", shard, url.PathEscape(opts.PlayerID), url.PathEscape(opts.SeasonID))
	return c.getDocument(ctx, resourcePlayerSeasonStats, path)
}
