package noveltrans

import "context"

// Fetcher retrieves raw document text from URLs.
// Failures carry structured codes: EINVALID for malformed URLs,
// ENOTFOUND/ERATELIMITED/EUNAVAILABLE for bad statuses, EUNAVAILABLE
// for transport errors.
type Fetcher interface {
	// Fetch performs a single GET and returns the raw document text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// URLSource discovers chapter URLs for a work.
// Implementations hide the discovery mechanism (sitemaps, tables of
// contents).
type URLSource interface {
	Discover(ctx context.Context, sourceURL string) ([]string, error)
}

// DomainLimiter throttles requests per origin host.
type DomainLimiter interface {
	// Wait blocks until the limiter allows a request to the domain, or
	// the context is canceled.
	Wait(ctx context.Context, domain string) error
}
