package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"net/http"
	"testing"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/mock"
	"github.com/thakurdishanttt/cold-email-gen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("passes results through and logs the outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		fetcher := slog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (int, string, error) {
				return http.StatusOK, "<html></html>", nil
			},
		}, logger)

		status, html, err := fetcher.Fetch(context.Background(), "https://acme.com")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "url=https://acme.com")
		assert.Contains(t, buf.String(), "status=200")
	})

	t.Run("logs errors at warn level and passes them through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		fetcher := slog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (int, string, error) {
				return 0, "", errors.New("connection refused")
			},
		}, logger)

		_, _, err := fetcher.Fetch(context.Background(), "https://acme.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestLoggingScraper(t *testing.T) {
	t.Parallel()

	t.Run("logs a summary of the scraped profile", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		scraper := slog.NewLoggingScraper(&mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string, _ coldemail.ScrapeOptions) (*coldemail.CompanyProfile, error) {
				profile := coldemail.NewCompanyProfile()
				profile.Name = "Acme Corp"
				profile.Industry = "Technology"
				profile.ProductsServices = []string{"Cloud Hosting"}
				return profile, nil
			},
		}, logger)

		profile, err := scraper.Scrape(context.Background(), "https://acme.com", coldemail.ScrapeOptions{})

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", profile.Name)
		assert.Contains(t, buf.String(), `name="Acme Corp"`)
		assert.Contains(t, buf.String(), "industry=Technology")
		assert.Contains(t, buf.String(), "services=1")
	})
}
