package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var (
	contactSectionRe = regexp.MustCompile(`(?i)contact|footer|connect|get-in-touch`)
	emailRe          = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	// phoneRe is deliberately strict about grouping so that years and
	// other short digit runs do not qualify.
	phoneRe    = regexp.MustCompile(`(?:(?:\+|00)[0-9]{1,3}[-\s]?)?(?:(?:\(\d{1,4}\)|\d{1,4})[-\s]?)?\d{3,4}[-\s]?\d{3,4}`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

const (
	// minPhoneDigits rejects matches that are dates or fragments rather
	// than dialable numbers.
	minPhoneDigits = 7

	maxSocialLinks = 2
)

// socialPatterns maps social network labels to their host patterns, in
// the order fragments are appended.
var socialPatterns = []struct {
	label string
	host  *regexp.Regexp
}{
	{"LinkedIn", regexp.MustCompile(`(?i)linkedin\.com`)},
	{"Twitter", regexp.MustCompile(`(?i)twitter\.com|x\.com`)},
	{"Facebook", regexp.MustCompile(`(?i)facebook\.com`)},
	{"Instagram", regexp.MustCompile(`(?i)instagram\.com`)},
}

// ExtractContact composes profile.Contact from labeled fragments joined
// with " | ": email and phone found in contact-tagged sections, falling
// back to mailto:/tel: links and finally a whole-page text scan, plus up
// to two social profile links. Write-once at the composed-string level.
func ExtractContact(p *Page, profile *coldemail.CompanyProfile) {
	if profile.Contact != "" {
		return
	}

	var fragments []string
	fragments = contactFromSections(p, fragments)
	if len(fragments) == 0 {
		fragments = contactFromLinks(p, fragments)
	}
	if len(fragments) == 0 {
		fragments = contactFromPageText(p, fragments)
	}
	fragments = appendSocialLinks(p, fragments)

	if len(fragments) > 0 {
		profile.Contact = strings.Join(fragments, " | ")
	}
}

// contactFromSections scans contact/footer-tagged sections for an email
// address and a plausible phone number.
func contactFromSections(p *Page, fragments []string) []string {
	for _, section := range p.findAttrMatch(contactSectionRe, "div", "section", "footer", "address", "article") {
		text := normalizeSpace(section.Text())

		if !hasFragment(fragments, "Email") {
			if email := emailRe.FindString(text); email != "" {
				fragments = append(fragments, "Email: "+email)
			}
		}
		if !hasFragment(fragments, "Phone") {
			if phone := firstValidPhone(text); phone != "" {
				fragments = append(fragments, "Phone: "+phone)
			}
		}
	}
	return fragments
}

// contactFromLinks falls back to mailto: and tel: anchors anywhere on the
// page.
func contactFromLinks(p *Page, fragments []string) []string {
	p.doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			return true
		}
		email := strings.TrimSpace(strings.SplitN(href[len("mailto:"):], "?", 2)[0])
		if email != "" && strings.Contains(email, "@") {
			fragments = append(fragments, "Email: "+email)
			return false
		}
		return true
	})

	p.doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if !strings.HasPrefix(strings.ToLower(href), "tel:") {
			return true
		}
		phone := strings.TrimSpace(href[len("tel:"):])
		if phone != "" && digitCount(phone) >= minPhoneDigits {
			fragments = append(fragments, "Phone: "+phone)
			return false
		}
		return true
	})

	return fragments
}

// contactFromPageText regex-scans the full page text as a last resort.
func contactFromPageText(p *Page, fragments []string) []string {
	text := p.Text()
	if email := emailRe.FindString(text); email != "" {
		fragments = append(fragments, "Email: "+email)
	}
	if phone := firstValidPhone(text); phone != "" {
		fragments = append(fragments, "Phone: "+phone)
	}
	return fragments
}

// appendSocialLinks adds up to maxSocialLinks social profile fragments.
func appendSocialLinks(p *Page, fragments []string) []string {
	added := 0
	for _, sp := range socialPatterns {
		if added >= maxSocialLinks {
			break
		}
		var href string
		p.doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			h, _ := link.Attr("href")
			if sp.host.MatchString(h) {
				href = h
				return false
			}
			return true
		})
		if href != "" {
			fragments = append(fragments, sp.label+": "+href)
			added++
		}
	}
	return fragments
}

// firstValidPhone returns the first phone-pattern match in text carrying
// at least minPhoneDigits digits.
func firstValidPhone(text string) string {
	for _, candidate := range phoneRe.FindAllString(text, -1) {
		if digitCount(candidate) >= minPhoneDigits {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

func digitCount(s string) int {
	return len(nonDigitRe.ReplaceAllString(s, ""))
}

func hasFragment(fragments []string, label string) bool {
	for _, f := range fragments {
		if strings.HasPrefix(f, label) {
			return true
		}
	}
	return false
}
