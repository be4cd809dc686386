package pubg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		call        func(ctx context.Context, client *Client) (*Document, error)
		expectedURL string
	}{
		{
			name: "player by id",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Player(ctx, PlayerOptions{ID: "account.c0e530e9b7244b358def282782f893af"})
			},
			expectedURL: "https://api.pubg.com/shards/steam/players/account.c0e530e9b7244b358def282782f893af",
		},
		{
			name: "player by name",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Player(ctx, PlayerOptions{Name: "shroud"})
			},
			expectedURL: "https://api.pubg.com/shards/steam/players?filter[playerNames]=shroud",
		},
		{
			name: "player by id on another shard",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Player(ctx, PlayerOptions{ID: "account.x", Shard: ShardKakao})
			},
			expectedURL: "https://api.pubg.com/shards/kakao/players/account.x",
		},
		{
			name: "id wins over name",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Player(ctx, PlayerOptions{ID: "account.x", Name: "shroud"})
			},
			expectedURL: "https://api.pubg.com/shards/steam/players/account.x",
		},
		{
			name: "player id with path characters is escaped",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Player(ctx, PlayerOptions{ID: "account.x/../y"})
			},
			expectedURL: "https://api.pubg.com/shards/steam/players/account.x%2F..%2Fy",
		},
		{
			name: "player season stats",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.PlayerSeasonStats(ctx, PlayerSeasonStatsOptions{
					PlayerID: "account.x",
					SeasonID: "division.bro.official.pc-2018-01",
				})
			},
			expectedURL: "https://api.pubg.com/shards/steam/players/account.x/seasons/division.bro.official.pc-2018-01",
		},
		{
			name: "seasons",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Seasons(ctx, SeasonsOptions{})
			},
			expectedURL: "https://api.pubg.com/shards/steam/seasons",
		},
		{
			name: "seasons on another shard",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Seasons(ctx, SeasonsOptions{Shard: ShardXbox})
			},
			expectedURL: "https://api.pubg.com/shards/xbox/seasons",
		},
		{
			name: "match",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Match(ctx, MatchOptions{ID: "c381dc33-2d87-4b05-b145-b1d1c09d5891"})
			},
			expectedURL: "https://api.pubg.com/shards/steam/matches/c381dc33-2d87-4b05-b145-b1d1c09d5891",
		},
		{
			name: "match id with query characters is escaped",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Match(ctx, MatchOptions{ID: "abc?shardId=kakao"})
			},
			expectedURL: "https://api.pubg.com/shards/steam/matches/abc%3FshardId=kakao",
		},
		{
			name: "status",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Status(ctx)
			},
			expectedURL: "https://api.pubg.com/status",
		},
		{
			name: "tournaments",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Tournaments(ctx)
			},
			expectedURL: "https://api.pubg.com/tournaments",
		},
		{
			name: "tournament by id",
			call: func(ctx context.Context, client *Client) (*Document, error) {
				return client.Tournament(ctx, TournamentOptions{ID: "eu-pgs19"})
			},
			expectedURL: "https://api.pubg.com/tournaments/eu-pgs19",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			httpClient := newMockedHttpClient(t, tc.expectedURL, 200, `{"data":[]}`, nil)
			client, err := New(httpClient, apiKey, "", CacheTTLs{})
			require.NoError(t, err)

			doc, err := tc.call(t.Context(), client)
			require.NoError(t, err)
			require.NotNil(t, doc)
			require.Equal(t, 1, httpClient.calls)
		})
	}
}
