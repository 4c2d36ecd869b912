package coldemail

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	specialCharRe = regexp.MustCompile(`[^\w\s.,;:!?()-]`)
	// Company suffixes stripped by FormatCompanyName, with optional
	// leading comma and trailing period.
	companySuffixRe = regexp.MustCompile(`(?i)(?:,?\s+(?:Inc|LLC|Ltd|Limited|Corp|Corporation|Co|Company|GmbH|LLP|LP|S\.A\.|AG|PLC)\.?)$`)
)

// CleanText collapses runs of whitespace and strips characters that tend
// to break downstream text processing.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialCharRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ValidateURL reports whether rawURL is absolute with a scheme and host.
func ValidateURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Domain extracts the host from rawURL, stripping any "www." prefix.
// Returns an empty string if the URL cannot be parsed.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// FormatCompanyName strips common legal suffixes ("Acme, Inc." -> "Acme").
func FormatCompanyName(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(companySuffixRe.ReplaceAllString(name, ""))
}

// TruncateText shortens text to at most maxLen bytes, cutting at the last
// word boundary and appending an ellipsis. The cut never splits a
// multi-byte rune.
func TruncateText(text string, maxLen int) string {
	if text == "" || len(text) <= maxLen {
		return text
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	truncated := text[:cut]
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + "..."
}
