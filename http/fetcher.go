// Package http provides the HTTP implementation of coldemail.Fetcher used
// to retrieve pages from company websites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 10 * time.Second

// Request headers mimicking a regular browser session. Some sites serve
// stripped-down or blocked responses to obvious bot user agents.
const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"
)

// Ensure Fetcher implements coldemail.Fetcher at compile time.
var _ coldemail.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs with browser-like headers and an
// optional politeness rate limit shared across all requests it issues.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit throttles outgoing requests to r per second with the
// given burst. No limit is applied when this option is omitted.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(r, burst)
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET request against url and returns the status code
// and body. A non-200 status is returned to the caller, not treated as
// an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (int, string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return 0, "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", coldemail.Errorf(coldemail.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}

	return resp.StatusCode, string(body), nil
}
