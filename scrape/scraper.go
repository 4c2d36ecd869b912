// Package scrape orchestrates the multi-page crawl that assembles a
// company profile: page selection, the per-page extractor pass, industry
// inference, and post-processing.
package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/classify"
)

// DefaultMaxPages is the hard ceiling on page fetches per scrape.
const DefaultMaxPages = 5

// wellKnownPaths are the candidate subpages tried after the home page,
// in order. They cover the pages that most commonly carry company
// information.
var wellKnownPaths = []string{
	"about", "about-us", "company", "services", "products", "solutions",
	"what-we-do",
}

// Ensure Scraper implements coldemail.Scraper at compile time.
var _ coldemail.Scraper = (*Scraper)(nil)

// Scraper crawls a company website and assembles a CompanyProfile.
// Crawling is sequential: one page at a time, each page run through the
// extractor before the next fetch.
type Scraper struct {
	Fetcher   coldemail.Fetcher
	Extractor coldemail.Extractor
	Logger    *slog.Logger

	// MaxPages overrides DefaultMaxPages when positive.
	MaxPages int
}

// NewScraper creates a Scraper with the default page ceiling.
func NewScraper(fetcher coldemail.Fetcher, extractor coldemail.Extractor, logger *slog.Logger) *Scraper {
	return &Scraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		Logger:    logger,
		MaxPages:  DefaultMaxPages,
	}
}

// Scrape fetches the home page and the well-known subpages, runs the
// extractor over each, then infers the industry (when still unknown) and
// post-processes the profile.
//
// Scrape never fails the caller: fetch errors and non-200 responses skip
// the page, and any unexpected panic is recovered, logged, and answered
// with whatever partial profile has been accumulated. The returned error
// is always nil.
func (s *Scraper) Scrape(ctx context.Context, baseURL string, opts coldemail.ScrapeOptions) (profile *coldemail.CompanyProfile, err error) {
	profile = coldemail.NewCompanyProfile()
	if opts.CompanyName != "" {
		profile.Name = opts.CompanyName
	}

	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("scrape aborted, returning partial profile",
				"url", baseURL,
				"panic", r,
			)
		}
		// Finalization must run even on the panic path so the profile
		// stays structurally valid for downstream consumers.
		if profile.Industry == "" {
			profile.Industry = classify.Infer(profile)
		}
		PostProcess(profile, baseURL)
		err = nil
	}()

	base, parseErr := url.Parse(baseURL)
	if parseErr != nil {
		s.Logger.Error("invalid base URL", "url", baseURL, "error", parseErr)
		return profile, nil
	}

	maxPages := s.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	visited := make(map[string]bool)
	fetched := 0

	s.scrapePage(ctx, baseURL, profile, visited, &fetched, maxPages)

	for _, path := range wellKnownPaths {
		if fetched >= maxPages {
			break
		}
		ref, refErr := url.Parse(path)
		if refErr != nil {
			continue
		}
		s.scrapePage(ctx, base.ResolveReference(ref).String(), profile, visited, &fetched, maxPages)
	}

	s.Logger.Info("scrape complete",
		"url", baseURL,
		"pages", fetched,
		"services", len(profile.ProductsServices),
		"values", len(profile.Values),
	)
	return profile, nil
}

// scrapePage fetches a single page and runs the extractor over it.
// Already-visited URLs and pages beyond the ceiling are skipped before
// any fetch is issued.
func (s *Scraper) scrapePage(ctx context.Context, pageURL string, profile *coldemail.CompanyProfile, visited map[string]bool, fetched *int, maxPages int) {
	if visited[pageURL] || *fetched >= maxPages {
		return
	}
	visited[pageURL] = true
	*fetched++

	status, html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.Logger.Warn("fetch failed, skipping page", "url", pageURL, "error", err)
		return
	}
	if status != http.StatusOK {
		s.Logger.Warn("non-200 response, skipping page", "url", pageURL, "status", status)
		return
	}

	if err := s.Extractor.Extract(html, pageURL, profile); err != nil {
		s.Logger.Warn("extraction failed, skipping page", "url", pageURL, "error", err)
	}
}
