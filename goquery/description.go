package goquery

import (
	"regexp"
	"strings"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var heroClassRe = regexp.MustCompile(`(?i)hero|banner|jumbotron|intro`)

// ExtractDescription fills profile.Description from the meta description,
// the Open Graph description, or the first paragraph of a hero section,
// in that order. Write-once.
func ExtractDescription(p *Page, profile *coldemail.CompanyProfile) {
	if profile.Description != "" {
		return
	}
	if desc, ok := firstMatch(p, descriptionFromMeta, descriptionFromOpenGraph, descriptionFromHero); ok {
		profile.Description = desc
	}
}

func descriptionFromMeta(p *Page) (string, bool) {
	content, _ := p.doc.Find(`meta[name="description"]`).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, content != ""
}

func descriptionFromOpenGraph(p *Page) (string, bool) {
	content, _ := p.doc.Find(`meta[property="og:description"]`).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, content != ""
}

// descriptionFromHero takes the first paragraph inside the first
// hero/banner/intro-styled container.
func descriptionFromHero(p *Page) (string, bool) {
	containers := p.findAttrMatch(heroClassRe, "div", "section")
	if len(containers) == 0 {
		return "", false
	}
	text := normalizeSpace(containers[0].Find("p").First().Text())
	return text, text != ""
}
