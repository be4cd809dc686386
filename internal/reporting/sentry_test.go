package reporting

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shardlight/shardlight/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "account id",
			input:    "failed to get player account.c0e530e9b7244b358def282782f893af",
			expected: "failed to get player <accountId>",
		},
		{
			name:     "host and port",
			input:    "dial tcp [::1]:443: connect: connection refused",
			expected: "dial tcp <host>: connect: connection refused",
		},
		{
			name:     "nothing to scrub",
			input:    "failed to parse response body",
			expected: "failed to parse response body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, sanitizeError(tc.input))
		})
	}
}

func TestReportWithoutHubDoesNotPanic(t *testing.T) {
	t.Parallel()

	Report(t.Context(), assert.AnError)
}

func TestNewSentryMiddlewareOrMock(t *testing.T) {
	t.Run("development passthrough", func(t *testing.T) {
		t.Setenv("SHARDLIGHT_ENVIRONMENT", "development")
		t.Setenv("SENTRY_DSN", "")

		conf, err := config.ConfigFromEnv()
		require.NoError(t, err)

		middleware, flush, err := NewSentryMiddlewareOrMock(conf)
		require.NoError(t, err)
		defer flush()

		called := false
		handler := middleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/status", nil))
		require.True(t, called)
	})
}

func TestNewAddMetaMiddleware(t *testing.T) {
	t.Parallel()

	middleware := NewAddMetaMiddleware("status")

	var meta ReportingMeta
	handler := middleware(func(w http.ResponseWriter, r *http.Request) {
		meta = MetaFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	req.Header.Set("User-Agent", "test-agent")
	handler(httptest.NewRecorder(), req)

	require.Equal(t, "status", meta.tags["port"])
	require.Equal(t, "test-agent", meta.tags["userAgent"])
	require.Equal(t, "GET /v1/status", meta.tags["methodPath"])
	require.False(t, meta.startedAt.IsZero())
}
