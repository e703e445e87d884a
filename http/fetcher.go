// Package http provides the HTTP implementations of noveltrans.Fetcher
// and noveltrans.URLSource for static sites that don't require
// JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mwielbut/noveltrans"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to origin servers.
const DefaultUserAgent = "noveltrans/1.0"

// Ensure Fetcher implements noveltrans.Fetcher at compile time.
var _ noveltrans.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup over plain HTTP. Response status codes
// are mapped onto the application error codes so callers can decide
// retryability without inspecting the response.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the markup at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", noveltrans.WrapErrorf(err, noveltrans.EINVALID, "invalid url %q", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", noveltrans.WrapErrorf(err, noveltrans.EUNAVAILABLE, "fetching %s", url)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", noveltrans.WrapErrorf(err, noveltrans.EINTERNAL, "reading response from %s", url)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classifyStatus maps an HTTP status code onto the application error
// codes. 2xx is success.
func classifyStatus(code int, url string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound || code == http.StatusGone:
		return noveltrans.Errorf(noveltrans.ENOTFOUND, "HTTP %d for %s", code, url)
	case code == http.StatusTooManyRequests || code == http.StatusRequestTimeout:
		return noveltrans.Errorf(noveltrans.ERATELIMITED, "HTTP %d for %s", code, url)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return noveltrans.Errorf(noveltrans.EUNAUTHORIZED, "HTTP %d for %s", code, url)
	case code >= 500:
		return noveltrans.Errorf(noveltrans.EUNAVAILABLE, "HTTP %d for %s", code, url)
	default:
		return noveltrans.Errorf(noveltrans.EINVALID, "HTTP %d for %s", code, url)
	}
}
