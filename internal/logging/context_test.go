package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/shardlight/shardlight/internal/logging"
	"github.com/stretchr/testify/require"
)

func popEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	buf.Reset()

	// Hard to match against
	delete(entry, "time")

	return entry
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	ctx = logging.AddToContext(ctx, logger)

	require.Equal(t, logger, logging.FromContext(ctx))
}

func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	logger := logging.FromContext(t.Context())
	require.NotNil(t, logger)
}

func TestAddMetaToContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	rootLogger := slog.New(slog.NewJSONHandler(buf, nil)).With(slog.String("instance", "i-1"))
	ctx := logging.AddToContext(t.Context(), rootLogger)

	ctx = logging.AddMetaToContext(ctx, slog.String("shard", "steam"))
	logging.FromContext(ctx).Info("test")

	require.Equal(t, map[string]any{
		"level":    "INFO",
		"msg":      "test",
		"instance": "i-1",
		"shard":    "steam",
	}, popEntry(t, buf))

	ctx = logging.AddMetaToContext(ctx, slog.String("shard", "kakao"), slog.String("matchId", "abc"))
	logging.FromContext(ctx).Info("test")

	require.Equal(t, map[string]any{
		"level":    "INFO",
		"msg":      "test",
		"instance": "i-1",
		"shard":    "kakao",
		"matchId":  "abc",
	}, popEntry(t, buf))
}
