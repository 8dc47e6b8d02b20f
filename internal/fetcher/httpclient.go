package fetcher

import (
	"context"
	"log/slog"

	"resty.dev/v3"
)

// HTTPFetcher is a Fetcher backed by a resty client.
// Requests are attempted exactly once.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPClient creates the resty client used for page retrieval.
// Retries are disabled and no client timeout is set, so the caller's
// context is the only deadline.
func NewHTTPClient() *resty.Client {
	return resty.New().
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetRetryCount(0)
}

// NewHTTPFetcher creates a page fetcher. A nil client gets NewHTTPClient.
func NewHTTPFetcher(client *resty.Client) *HTTPFetcher {
	if client == nil {
		client = NewHTTPClient()
	}
	return &HTTPFetcher{client: client}
}

// Fetch implements Fetcher
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	slog.InfoContext(ctx, "fetching page", "url", url)

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", ClassifyTransportError(url, err)
	}

	if !resp.IsSuccess() {
		return "", ClassifyHTTPError(url, resp.StatusCode())
	}

	slog.DebugContext(ctx, "fetched page",
		"url", url,
		"status_code", resp.StatusCode(),
		"bytes", len(resp.Bytes()))

	return resp.String(), nil
}

// Close releases the underlying client's resources
func (f *HTTPFetcher) Close() error {
	return f.client.Close()
}
