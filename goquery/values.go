package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var (
	valuesContainerRe = regexp.MustCompile(`(?i)values|mission|vision|principles|purpose|culture`)
	valuesHeadingRe   = regexp.MustCompile(`(?i)values|mission|vision|principles|purpose`)
	sentenceSplitRe   = regexp.MustCompile(`[.!?]\s+`)
	phraseSplitRe     = regexp.MustCompile(`[,;]\s+`)
)

// valueKeywords are the lexical cues that a sentence or phrase expresses
// a company value.
var valueKeywords = []string{
	"integrity", "innovation", "excellence", "quality", "customer",
	"service", "respect", "responsibility", "sustainability", "diversity",
	"inclusion", "teamwork", "collaboration", "trust", "ethical",
	"commitment", "passion",
}

const (
	maxValueItemLen   = 50
	maxValueSentence  = 150
	maxValuePhraseLen = 100
	maxValues         = 5
)

// ExtractValues accumulates company values: items in values/mission-tagged
// containers, then content following a values heading, then value-laden
// sentences from the about text, then phrases from the description.
// Overly long entries are split into sub-phrases and the list is capped.
func ExtractValues(p *Page, profile *coldemail.CompanyProfile) {
	valuesFromContainer(p, profile)
	if len(profile.Values) == 0 {
		valuesFromHeadings(p, profile)
	}
	if len(profile.Values) == 0 && profile.About != "" {
		valuesFromAbout(profile)
	}
	if len(profile.Values) == 0 && profile.Description != "" {
		valuesFromDescription(profile)
	}
	refineValues(profile)
}

// valuesFromContainer harvests short headings, emphasized text, and list
// items from the first values/mission/culture-tagged container.
func valuesFromContainer(p *Page, profile *coldemail.CompanyProfile) {
	containers := p.findAttrMatch(valuesContainerRe, "div", "section", "article")
	if len(containers) == 0 {
		return
	}
	containers[0].Find("h3, h4, h5, strong, b, li").Each(func(_ int, item *goquery.Selection) {
		value := normalizeSpace(item.Text())
		if value != "" && len(value) < maxValueItemLen {
			profile.AddValue(value)
		}
	})
}

// valuesFromHeadings harvests the list or paragraph following each
// values/mission heading.
func valuesFromHeadings(p *Page, profile *coldemail.CompanyProfile) {
	for _, heading := range p.findTextMatch(valuesHeadingRe, "h1", "h2", "h3", "h4") {
		next := nextMatching(heading, "ul, ol, p")
		if next == nil {
			continue
		}
		if name := goquery.NodeName(next); name == "ul" || name == "ol" {
			next.Find("li").Each(func(_ int, item *goquery.Selection) {
				value := normalizeSpace(item.Text())
				if value != "" && len(value) < maxValueItemLen {
					profile.AddValue(value)
				}
			})
		} else {
			if value := normalizeSpace(next.Text()); value != "" {
				profile.AddValue(value)
			}
		}
	}
}

// valuesFromAbout keeps sentences of the about text that mention a value
// keyword. One sentence per keyword, shortest-path heuristic: the first
// sentence containing it.
func valuesFromAbout(profile *coldemail.CompanyProfile) {
	aboutLower := strings.ToLower(profile.About)
	sentences := sentenceSplitRe.Split(profile.About, -1)

	for _, keyword := range valueKeywords {
		if !strings.Contains(aboutLower, keyword) {
			continue
		}
		for _, sentence := range sentences {
			trimmed := strings.TrimSpace(sentence)
			if len(trimmed) < maxValueSentence && strings.Contains(strings.ToLower(trimmed), keyword) {
				profile.AddValue(trimmed)
				break
			}
		}
	}
}

// valuesFromDescription keeps comma/semicolon-separated phrases of the
// description that mention a value keyword.
func valuesFromDescription(profile *coldemail.CompanyProfile) {
	for _, phrase := range phraseSplitRe.Split(profile.Description, -1) {
		trimmed := strings.TrimSpace(phrase)
		if trimmed == "" || len(trimmed) >= maxValuePhraseLen {
			continue
		}
		if containsValueKeyword(trimmed) {
			profile.AddValue(trimmed)
		}
	}
}

// refineValues splits overlong entries into sub-phrases, deduplicates,
// and caps the list at maxValues.
func refineValues(profile *coldemail.CompanyProfile) {
	if len(profile.Values) == 0 {
		return
	}

	var refined []string
	seen := make(map[string]bool)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			refined = append(refined, v)
		}
	}

	for _, value := range profile.Values {
		if len(value) <= maxValuePhraseLen {
			add(value)
			continue
		}
		for _, part := range phraseSplitRe.Split(value, -1) {
			part = strings.TrimSpace(part)
			if part != "" && len(part) < maxValuePhraseLen {
				add(part)
			}
		}
	}

	if len(refined) > maxValues {
		refined = refined[:maxValues]
	}
	profile.Values = refined
}

func containsValueKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, keyword := range valueKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
