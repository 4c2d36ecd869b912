package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var (
	logoWordRe    = regexp.MustCompile(`(?i)logo`)
	headerClassRe = regexp.MustCompile(`(?i)header|navbar`)
	brandClassRe  = regexp.MustCompile(`(?i)brand|logo-text|site-title`)
)

// ExtractName fills profile.Name from the first of: logo image alt text,
// the page title, or header branding. Write-once.
func ExtractName(p *Page, profile *coldemail.CompanyProfile) {
	if profile.Name != "" {
		return
	}
	if name, ok := firstMatch(p, nameFromLogoAlt, nameFromTitle, nameFromBrand); ok {
		profile.Name = name
	}
}

// nameFromLogoAlt uses the alt text of the first image mentioning "logo",
// with the word itself stripped out.
func nameFromLogoAlt(p *Page) (string, bool) {
	var name string
	p.doc.Find("img[alt]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		alt, _ := sel.Attr("alt")
		if !logoWordRe.MatchString(alt) {
			return true
		}
		name = strings.TrimSpace(logoWordRe.ReplaceAllString(alt, ""))
		return false
	})
	return name, name != ""
}

// nameFromTitle takes the page title up to the first "|" or "-" delimiter.
func nameFromTitle(p *Page) (string, bool) {
	title := p.Title()
	if title == "" {
		return "", false
	}
	name := strings.TrimSpace(strings.SplitN(strings.SplitN(title, "|", 2)[0], "-", 2)[0])
	return name, name != ""
}

// nameFromBrand looks inside the first header/navbar element for an
// element carrying a brand, logo-text, or site-title marker.
func nameFromBrand(p *Page) (string, bool) {
	headers := p.findAttrMatch(headerClassRe, "header", "div")
	if len(headers) == 0 {
		return "", false
	}
	brand := firstAttrMatchIn(headers[0], brandClassRe, "a", "div", "span")
	if brand == nil {
		return "", false
	}
	name := normalizeSpace(brand.Text())
	return name, name != ""
}
