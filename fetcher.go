package jobscan

import "context"

// FetchResult holds the raw page retrieved for a job-posting URL.
// It is owned transiently by the pipeline and discarded after parsing.
type FetchResult struct {
	// URL is the URL that was requested.
	URL string

	// FinalURL is the URL after following redirects. Job boards frequently
	// redirect listing URLs to the canonical posting.
	FinalURL string

	// StatusCode is the HTTP status of the final response.
	StatusCode int

	// HTML is the decoded response body. Empty only if the fetch failed.
	HTML string

	// ContentType is the media type of the response, without parameters.
	ContentType string
}

// Fetcher retrieves raw page content for a URL.
type Fetcher interface {
	// Fetch retrieves the page at url, following redirects.
	// The context controls timeout and cancellation.
	// Failures carry one of the fetch error codes:
	// EUNREACHABLE, ETIMEOUT, EBLOCKED, or ENOTHTML.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// DomainLimiter provides per-domain rate limiting for outbound requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
