package pubg

import "errors"

var (
	ErrMissingAPIKey    = errors.New("missing api key")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidShard     = errors.New("invalid shard")

	// ErrTransport wraps failures to reach the API or to read its response.
	// The request never produced a usable body.
	ErrTransport = errors.New("transport error")
)

// APIError is a structured error envelope returned by the PUBG API,
// normalized to the first error object in the response.
type APIError struct {
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.Title
	}
	return e.Title + ": " + e.Detail
}
