// ABOUTME: Standard HTTP client implementation with optional retry logic and timeout support
// ABOUTME: Provides HTTP functionality with exponential backoff and a shared cookie jar

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"anifinder-api/core/interfaces"
	"golang.org/x/net/publicsuffix"
)

const (
	defaultMaxRetries = 2
	defaultUserAgent  = "AniFinderAPI/1.0"
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds each request, including reading the body
	Timeout time.Duration

	// MaxRetries is the number of extra attempts for 5xx responses and
	// transport errors on GET. Zero disables retries.
	MaxRetries int

	// UserAgent overrides the default User-Agent header
	UserAgent string

	// Headers are added to every request
	Headers map[string]string

	// Transport overrides http.DefaultTransport
	Transport http.RoundTripper
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client     *http.Client
	maxRetries int
	userAgent  string
	headers    map[string]string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
// and the default retry policy
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewStandardHTTPClientWithOptions(Options{
		Timeout:    timeout,
		MaxRetries: defaultMaxRetries,
	})
}

// NewStandardHTTPClientWithOptions creates a new HTTP client from opts
func NewStandardHTTPClientWithOptions(opts Options) *StandardHTTPClient {
	// cookiejar.New never returns a non-nil error
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	retries := opts.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Jar:       jar,
			Transport: opts.Transport,
		},
		maxRetries: retries,
		userAgent:  userAgent,
		headers:    opts.Headers,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	// Perform request with retry logic
	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		r, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if r.StatusCode < 500 || attempt == c.maxRetries {
			resp = r
			break
		}

		// Close body for retry
		r.Body.Close()
		lastErr = fmt.Errorf("server returned %d", r.StatusCode)
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST request with a JSON body
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

func (c *StandardHTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
