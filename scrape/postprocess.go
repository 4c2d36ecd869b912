package scrape

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/classify"
)

// navVocabulary lists navigation-menu items that masquerade as services.
var navVocabulary = []string{
	"home", "about", "about us", "contact", "contact us", "careers",
	"login", "sign in", "register", "blog", "news", "events",
	"privacy policy", "terms", "sitemap", "search", "locations",
}

// navSubstrings disqualify a service entry wherever they appear in it.
var navSubstrings = []string{"login", "sign", "contact", "about"}

// minServiceLen rejects entries too short to be a real offering.
const minServiceLen = 4

// minPhoneDigits matches the extractor's threshold for dialable numbers.
const minPhoneDigits = 7

var (
	// datePatternRe catches values like "January 5, 2024" that leak out
	// of news/blog sections into the values list.
	datePatternRe = regexp.MustCompile(`(?i)^\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}\s*$`)

	nonDigitRe = regexp.MustCompile(`\D`)
)

// PostProcess cleans the scraped profile and backfills empty fields with
// industry-derived defaults. The rules run in a fixed order but are
// independent of each other.
func PostProcess(profile *coldemail.CompanyProfile, baseURL string) {
	filterNavServices(profile)
	filterDateValues(profile)
	validatePhoneFragments(profile)
	backfillContact(profile, baseURL)
	backfillServices(profile)
	backfillValues(profile)
}

// filterNavServices drops navigation-vocabulary entries from the
// products/services list. If filtering would empty the list entirely, the
// original is kept: a noisy list beats an empty one.
func filterNavServices(profile *coldemail.CompanyProfile) {
	if len(profile.ProductsServices) == 0 {
		return
	}

	var filtered []string
	for _, service := range profile.ProductsServices {
		if isNavItem(service) {
			continue
		}
		filtered = append(filtered, service)
	}

	if len(filtered) > 0 {
		profile.ProductsServices = filtered
	}
}

func isNavItem(service string) bool {
	lower := strings.ToLower(service)
	for _, nav := range navVocabulary {
		if lower == nav {
			return true
		}
	}
	if len(service) < minServiceLen {
		return true
	}
	for _, sub := range navSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// filterDateValues drops values matching a month-day-year date pattern.
func filterDateValues(profile *coldemail.CompanyProfile) {
	if len(profile.Values) == 0 {
		return
	}
	kept := profile.Values[:0]
	for _, value := range profile.Values {
		if !datePatternRe.MatchString(value) {
			kept = append(kept, value)
		}
	}
	profile.Values = kept
}

// validatePhoneFragments re-checks every "Phone:" fragment of the contact
// string. Fragments that parse as a valid number are normalized to
// international format; otherwise the raw digit count decides. Dropping
// every fragment empties the contact entirely.
func validatePhoneFragments(profile *coldemail.CompanyProfile) {
	if profile.Contact == "" || !strings.Contains(profile.Contact, "Phone:") {
		return
	}

	var kept []string
	for _, part := range strings.Split(profile.Contact, " | ") {
		if !strings.HasPrefix(part, "Phone:") {
			kept = append(kept, part)
			continue
		}
		raw := strings.TrimSpace(strings.TrimPrefix(part, "Phone:"))
		if normalized, ok := validPhone(raw); ok {
			kept = append(kept, "Phone: "+normalized)
		}
	}

	profile.Contact = strings.Join(kept, " | ")
}

// validPhone accepts raw when it parses as a valid number for any region
// (normalizing it), or, failing that, when it carries at least
// minPhoneDigits digits.
func validPhone(raw string) (string, bool) {
	if num, err := phonenumbers.Parse(raw, "US"); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), true
	}
	if len(nonDigitRe.ReplaceAllString(raw, "")) >= minPhoneDigits {
		return raw, true
	}
	return "", false
}

// backfillContact synthesizes contact info from the base URL when nothing
// was extracted: a LinkedIn company-page guess from the domain's first
// label plus the website itself.
func backfillContact(profile *coldemail.CompanyProfile, baseURL string) {
	if profile.Contact != "" || baseURL == "" {
		return
	}

	var parts []string
	if domain := coldemail.Domain(baseURL); domain != "" {
		label := strings.SplitN(domain, ".", 2)[0]
		parts = append(parts, "LinkedIn: https://www.linkedin.com/company/"+label)
	}
	parts = append(parts, "Website: "+baseURL)

	profile.Contact = strings.Join(parts, " | ")
}

// backfillServices fills an empty products/services list from the
// industry defaults table.
func backfillServices(profile *coldemail.CompanyProfile) {
	if len(profile.ProductsServices) > 0 || profile.Industry == "" {
		return
	}
	profile.ProductsServices = classify.DefaultServices(profile.Industry)
}

// backfillValues fills an empty values list from the industry defaults
// table.
func backfillValues(profile *coldemail.CompanyProfile) {
	if len(profile.Values) > 0 || profile.Industry == "" {
		return
	}
	profile.Values = classify.DefaultValues(profile.Industry)
}
