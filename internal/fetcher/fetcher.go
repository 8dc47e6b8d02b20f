package fetcher

import "context"

// Fetcher retrieves a single page of markup.
type Fetcher interface {
	// Fetch issues one GET to url and returns the response body.
	// Any transport failure or non-2xx status is returned as a *FetchError.
	Fetch(ctx context.Context, url string) (string, error)
}
