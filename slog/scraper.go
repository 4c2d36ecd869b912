package slog

import (
	"context"
	"log/slog"
	"time"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// Ensure LoggingScraper implements coldemail.Scraper.
var _ coldemail.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with per-scrape summary logging.
type LoggingScraper struct {
	next   coldemail.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next coldemail.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs a summary of what was
// extracted.
func (s *LoggingScraper) Scrape(ctx context.Context, baseURL string, opts coldemail.ScrapeOptions) (*coldemail.CompanyProfile, error) {
	begin := time.Now()
	profile, err := s.next.Scrape(ctx, baseURL, opts)
	s.logger.Info("scrape",
		"url", baseURL,
		"name", profile.Name,
		"industry", profile.Industry,
		"services", len(profile.ProductsServices),
		"values", len(profile.Values),
		"duration", time.Since(begin),
	)
	return profile, err
}
