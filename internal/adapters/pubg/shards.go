package pubg

import "fmt"

// Shard is the PUBG API's tenant concept: a platform partition addressed in
// request paths.
type Shard string

const (
	ShardSteam      Shard = "steam"
	ShardKakao      Shard = "kakao"
	ShardPSN        Shard = "psn"
	ShardXbox       Shard = "xbox"
	ShardStadia     Shard = "stadia"
	ShardConsole    Shard = "console"
	ShardTournament Shard = "tournament"
)

var allShards = []Shard{
	ShardSteam,
	ShardKakao,
	ShardPSN,
	ShardXbox,
	ShardStadia,
	ShardConsole,
	ShardTournament,
}

func ParseShard(raw string) (Shard, error) {
	for _, shard := range allShards {
		if raw == string(shard) {
			return shard, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShard, raw)
}

// resolveShard picks the per-call shard when one is supplied, otherwise the
// client default.
func (c *Client) resolveShard(override Shard) (Shard, error) {
	if override == "" {
		return c.defaultShard, nil
	}
	return ParseShard(string(override))
}
