package mock

import (
	"context"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var _ coldemail.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of coldemail.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, baseURL string, opts coldemail.ScrapeOptions) (*coldemail.CompanyProfile, error)
}

func (s *Scraper) Scrape(ctx context.Context, baseURL string, opts coldemail.ScrapeOptions) (*coldemail.CompanyProfile, error) {
	return s.ScrapeFn(ctx, baseURL, opts)
}

var _ coldemail.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of coldemail.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string, profile *coldemail.CompanyProfile) error
}

func (e *Extractor) Extract(html, pageURL string, profile *coldemail.CompanyProfile) error {
	return e.ExtractFn(html, pageURL, profile)
}
