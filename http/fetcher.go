// Package http provides the HTTP-based implementation of jobscan.Fetcher.
// It sends browser-like request headers to reduce automated-request
// blocking, follows redirects, and decodes non-UTF-8 responses.
package http

import (
	"context"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/jobscan"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default ceiling for a single fetch.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent mirrors a current desktop Chrome. Job boards routinely
// refuse requests with default library user agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// browserHeaders are sent with every request, on top of the user agent.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Cache-Control":             "max-age=0",
}

// Ensure Fetcher implements jobscan.Fetcher at compile time.
var _ jobscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves job-posting HTML over plain HTTP.
// It does not execute JavaScript; postings rendered entirely client-side
// are out of scope and surface as blocked or empty pages.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   jobscan.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the ceiling for a single fetch, redirects included.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the default browser user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter installs a per-domain rate limiter consulted before each
// request. Nil (the default) disables limiting.
func WithLimiter(l jobscan.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP Fetcher.
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

// Fetch retrieves the page at rawURL and returns the decoded HTML along
// with the final resolved URL and status code.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*jobscan.FetchResult, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, jobscan.Errorf(jobscan.EINVALID, "invalid URL %q", rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, jobscan.Errorf(jobscan.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(rawURL, err)
	}
	defer resp.Body.Close()

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	if code := classifyStatus(resp.StatusCode); code != "" {
		return nil, jobscan.Errorf(code, "HTTP %d for %s", resp.StatusCode, finalURL)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}
	if !isHTML(mediaType) {
		return nil, jobscan.Errorf(jobscan.ENOTHTML, "content type %q for %s", mediaType, finalURL)
	}

	// Sites frequently declare the wrong charset or none at all; decode
	// using header, meta tags, and content sniffing combined.
	reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		reader = resp.Body
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, jobscan.Errorf(jobscan.EUNREACHABLE, "reading %s: %v", finalURL, err)
	}

	return &jobscan.FetchResult{
		URL:         rawURL,
		FinalURL:    finalURL,
		StatusCode:  resp.StatusCode,
		HTML:        string(body),
		ContentType: mediaType,
	}, nil
}

// classifyStatus maps a non-success HTTP status to a fetch error code.
// Returns "" for statuses that carry a usable body.
func classifyStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ""
	// 999 is LinkedIn's bespoke anti-bot status.
	case status == http.StatusForbidden, status == http.StatusTooManyRequests,
		status == http.StatusUnavailableForLegalReasons, status == 999:
		return jobscan.EBLOCKED
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return jobscan.ETIMEOUT
	default:
		return jobscan.EUNREACHABLE
	}
}

// classifyTransportError maps transport failures to fetch error codes.
func classifyTransportError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return jobscan.Errorf(jobscan.ETIMEOUT, "fetching %s: %v", url, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return jobscan.Errorf(jobscan.ETIMEOUT, "fetching %s: %v", url, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return jobscan.Errorf(jobscan.EUNREACHABLE, "fetching %s: %v", url, err)
}

// isHTML reports whether the media type can be parsed as a page.
func isHTML(mediaType string) bool {
	switch mediaType {
	case "", "text/html", "application/xhtml+xml":
		return true
	}
	return false
}
