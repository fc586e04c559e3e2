package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the outbound HTTP contract used by the AnimeFLV scraper,
// the AniList client and the translator
type HTTPClient interface {
	// Get performs a GET request. The caller closes the response body.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs a POST request with a JSON body
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the subset of an HTTP response the providers read
type Response interface {
	StatusCode() int

	// Body must be closed by the caller
	Body() io.ReadCloser

	// Header returns the named header, case-insensitively, or ""
	Header(key string) string
}
