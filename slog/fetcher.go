// Package slog provides logging decorators for coldemail interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// Ensure LoggingFetcher implements coldemail.Fetcher.
var _ coldemail.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   coldemail.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next coldemail.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (int, string, error) {
	begin := time.Now()
	status, html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return status, html, err
	}
	f.logger.Info("fetch",
		"url", url,
		"status", status,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return status, html, nil
}
