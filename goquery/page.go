// Package goquery implements the per-field company-profile extraction
// heuristics on top of github.com/PuerkitoBio/goquery.
//
// Each field extractor applies an ordered fallback chain of strategies
// against a parsed page and writes into the profile only when allowed:
// scalar fields are write-once, products/services and values accumulate
// across pages.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"golang.org/x/net/html"
)

// Page is a parsed HTML page together with the URL it was fetched from.
type Page struct {
	doc *goquery.Document
	url string
}

// NewPage parses html into a queryable page.
func NewPage(html string, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coldemail.Errorf(coldemail.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc, url: pageURL}, nil
}

// URL returns the URL the page was fetched from.
func (p *Page) URL() string {
	return p.url
}

// Title returns the trimmed contents of the <title> element.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// Text returns the page's visible text with tags stripped and whitespace
// normalized.
func (p *Page) Text() string {
	return normalizeSpace(p.doc.Text())
}

// findAttrMatch returns, in document order, every element among tags whose
// class or id attribute matches re. This mirrors attribute-regex matching
// that CSS selectors cannot express case-insensitively.
func (p *Page) findAttrMatch(re *regexp.Regexp, tags ...string) []*goquery.Selection {
	var out []*goquery.Selection
	p.doc.Find(strings.Join(tags, ", ")).Each(func(_ int, sel *goquery.Selection) {
		if attrMatches(sel, re) {
			out = append(out, sel)
		}
	})
	return out
}

// findTextMatch returns, in document order, every element among tags whose
// own text content matches re.
func (p *Page) findTextMatch(re *regexp.Regexp, tags ...string) []*goquery.Selection {
	var out []*goquery.Selection
	p.doc.Find(strings.Join(tags, ", ")).Each(func(_ int, sel *goquery.Selection) {
		if re.MatchString(sel.Text()) {
			out = append(out, sel)
		}
	})
	return out
}

// attrMatches reports whether sel's class or id attribute matches re.
func attrMatches(sel *goquery.Selection, re *regexp.Regexp) bool {
	if class, ok := sel.Attr("class"); ok && re.MatchString(class) {
		return true
	}
	if id, ok := sel.Attr("id"); ok && re.MatchString(id) {
		return true
	}
	return false
}

// firstAttrMatchIn returns the first descendant of root among tags whose
// class or id matches re, or nil.
func firstAttrMatchIn(root *goquery.Selection, re *regexp.Regexp, tags ...string) *goquery.Selection {
	var found *goquery.Selection
	root.Find(strings.Join(tags, ", ")).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if attrMatches(sel, re) {
			found = sel
			return false
		}
		return true
	})
	return found
}

// nextMatching finds the first element following sel in document order
// whose tag appears in tags, a comma-separated tag list. The walk covers
// the whole remainder of the document, so a match outside sel's enclosing
// containers is still found. Returns nil if none exists.
func nextMatching(sel *goquery.Selection, tags string) *goquery.Selection {
	if len(sel.Nodes) == 0 {
		return nil
	}
	want := make(map[string]bool)
	for _, tag := range strings.Split(tags, ",") {
		want[strings.TrimSpace(tag)] = true
	}
	for n := nextInDocument(sel.Nodes[0]); n != nil; n = nextInDocument(n) {
		if n.Type == html.ElementNode && want[n.Data] {
			return goquery.NewDocumentFromNode(n).Selection
		}
	}
	return nil
}

// nextInDocument returns n's successor in document order: its first
// child, else the next sibling of the closest ancestor that has one.
func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// normalizeSpace collapses all runs of whitespace to single spaces and
// trims the result.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
