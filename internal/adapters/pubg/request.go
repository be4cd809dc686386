package pubg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shardlight/shardlight/internal/adapters/cache"
	"github.com/shardlight/shardlight/internal/logging"
	"github.com/shardlight/shardlight/internal/reporting"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// getDocument serves the request from the resource's cache when possible,
// and otherwise performs a single GET and stores the outcome (document or
// error) under the request path.
//
// Concurrent misses for the same path each issue their own request: there is
// no coalescing.
func (c *Client) getDocument(ctx context.Context, res resource, path string) (*Document, error) {
	logger := logging.FromContext(ctx)
	resourceCache := c.caches[res]

	if result, ok := resourceCache.Retrieve(path); ok {
		logger.InfoContext(ctx, "Serving pubg document", "resource", string(res), "cache", "hit")
		c.metrics.requestCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("resource", string(res)),
			attribute.Bool("cache_hit", true),
		))
		return result.Unwrap()
	}

	logger.InfoContext(ctx, "Serving pubg document", "resource", string(res), "cache", "miss")
	c.metrics.requestCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("resource", string(res)),
		attribute.Bool("cache_hit", false),
	))

	doc, err := c.fetch(ctx, path)
	if err != nil {
		// API and transport errors get the same caching treatment as
		// successes, so a failing endpoint is not hammered within the TTL
		// window.
		resourceCache.Add(path, cache.Err[*Document](err))
		return nil, err
	}

	resourceCache.Add(path, cache.Ok(doc))
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, path string) (*Document, error) {
	logger := logging.FromContext(ctx)
	url := apiHost + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/vnd.api+json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err := fmt.Errorf("%w: failed to send request: %w", ErrTransport, err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return nil, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		err := fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
		logger.Error(err.Error())
		reporting.Report(ctx, err)
		return nil, err
	}
	logger.Info("pubg request completed", "url", url, "status", resp.StatusCode, "duration", time.Since(start).String())

	// The API signals failure through the error envelope, not the status
	// code, so the body is parsed regardless of status.
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
