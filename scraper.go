package coldemail

import "context"

// ScrapeOptions carries optional inputs for a scrape.
type ScrapeOptions struct {
	// CompanyName, when already known by the caller, is written into the
	// profile up front so name extraction is bypassed.
	CompanyName string
}

// Scraper assembles a CompanyProfile from a company website.
//
// Scraping is best-effort by contract: implementations never fail the
// caller. Fetch failures and missing page structure degrade into empty or
// partially-populated fields, and the returned profile is always
// structurally valid (non-nil, empty strings and slices rather than
// absent fields).
type Scraper interface {
	// Scrape crawls baseURL and a small set of well-known subpages and
	// returns the assembled profile. The returned error is always nil;
	// it exists so decorators can preserve the signature shape.
	Scrape(ctx context.Context, baseURL string, opts ScrapeOptions) (*CompanyProfile, error)
}

// Extractor populates profile fields from a single fetched page.
// Implementations parse the HTML once and run every field extraction
// strategy against it; fields that are already set are left untouched.
type Extractor interface {
	// Extract parses html and fills any profile fields it can.
	// A parse failure is reported as an error; missing page elements are
	// not errors, they simply yield no fields.
	Extract(html string, pageURL string, profile *CompanyProfile) error
}
