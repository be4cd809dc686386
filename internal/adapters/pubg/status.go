package pubg

import "context"

// Status fetches the API status document. The endpoint is unsharded.
func (c *Client) Status(ctx context.Context) (*Document, error) {
	return c.getDocument(ctx, resourceStatus, "/status")
}
