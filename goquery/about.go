package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var (
	aboutContainerRe = regexp.MustCompile(`(?i)content|main|about|company|overview|who-we-are`)
	aboutHeadingRe   = regexp.MustCompile(`(?i)about us|company|who we are`)
)

// aboutParagraphLimit caps how many leading paragraphs of a container are
// concatenated, to avoid sweeping in unrelated content.
const aboutParagraphLimit = 3

const (
	// aboutPreferredLen is the length at which a candidate is considered
	// substantial enough to stop trying further strategies.
	aboutPreferredLen = 50

	// aboutMinLen is the minimum accepted length for the final candidate.
	aboutMinLen = 20
)

// ExtractAbout fills profile.About from content-tagged containers, the
// meta/Open Graph descriptions, or the paragraph following an "about us"
// heading. A candidate shorter than aboutPreferredLen lets later
// strategies replace it; the final candidate must exceed aboutMinLen.
// Write-once.
func ExtractAbout(p *Page, profile *coldemail.CompanyProfile) {
	if profile.About != "" {
		return
	}

	content := aboutFromContainers(p)
	if len(content) < aboutPreferredLen {
		if meta, ok := descriptionFromMeta(p); ok {
			content = meta
		}
	}
	if len(content) < aboutPreferredLen {
		if og, ok := descriptionFromOpenGraph(p); ok {
			content = og
		}
	}
	if len(content) < aboutPreferredLen {
		if heading := aboutFromHeading(p); heading != "" {
			content = heading
		}
	}

	if len(content) > aboutMinLen {
		profile.About = content
	}
}

// aboutFromContainers concatenates the first few paragraphs of each
// container whose class or id suggests about/company content, stopping at
// the first container that yields a substantial result.
func aboutFromContainers(p *Page) string {
	var content string
	for _, container := range p.findAttrMatch(aboutContainerRe, "main", "div", "section", "article") {
		var parts []string
		container.Find("p").EachWithBreak(func(i int, para *goquery.Selection) bool {
			if i >= aboutParagraphLimit {
				return false
			}
			if text := normalizeSpace(para.Text()); text != "" {
				parts = append(parts, text)
			}
			return true
		})
		if len(parts) == 0 {
			continue
		}
		content = strings.Join(parts, " ")
		if len(content) > aboutPreferredLen {
			break
		}
	}
	return content
}

// aboutFromHeading takes the paragraph following a heading like
// "About Us" or "Who We Are", preferring the first substantial one.
func aboutFromHeading(p *Page) string {
	var content string
	for _, heading := range p.findTextMatch(aboutHeadingRe, "h1", "h2", "h3") {
		para := nextMatching(heading, "p")
		if para == nil {
			continue
		}
		content = normalizeSpace(para.Text())
		if len(content) > aboutPreferredLen {
			break
		}
	}
	return content
}
