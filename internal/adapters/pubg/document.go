package pubg

import (
	"encoding/json"
	"fmt"
)

// Document is a successful API response. The payload is passed through
// untouched: callers get the raw JSON document plus the parsed top-level
// data/included sections.
type Document struct {
	Data     json.RawMessage
	Included json.RawMessage

	raw []byte
}

// Raw returns the full response body as received from the API.
func (d *Document) Raw() []byte {
	return d.raw
}

type apiErrorObject struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type responseEnvelope struct {
	Data     json.RawMessage  `json:"data"`
	Included json.RawMessage  `json:"included"`
	Errors   []apiErrorObject `json:"errors"`
}

// parseDocument parses a full response body and detects the API error
// envelope. A non-empty errors array yields an *APIError built from its
// first element.
func parseDocument(data []byte) (*Document, error) {
	var envelope responseEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}

	if len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		return nil, &APIError{Title: first.Title, Detail: first.Detail}
	}

	return &Document{
		Data:     envelope.Data,
		Included: envelope.Included,
		raw:      data,
	}, nil
}
