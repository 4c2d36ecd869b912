package classify

import (
	"strings"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

const (
	// maxKeywordScore caps what a single keyword contributes from the
	// corpus scan: diminishing returns past three occurrences, so one
	// repeated word cannot dominate.
	maxKeywordScore = 3

	// nameDescriptionBonus is added when a keyword appears in the name or
	// description. The keyword still also scores in the corpus scan, so
	// name/description matches effectively count twice. Intentional: the
	// name and description are the strongest industry signals.
	nameDescriptionBonus = 2
)

// Infer scores every industry's keywords against the profile's text
// corpus and returns the strictly best-scoring label. A tie keeps the
// earlier entry of the ordered category list. Returns an empty string
// when nothing matches at all.
//
// Infer is deterministic: the same profile text always yields the same
// label.
func Infer(profile *coldemail.CompanyProfile) string {
	corpus := profile.Corpus()
	name := strings.ToLower(profile.Name)
	description := strings.ToLower(profile.Description)

	best := ""
	bestScore := 0
	for _, industry := range Industries {
		score := scoreIndustry(industry, corpus, name, description)
		if score > bestScore {
			best = industry.Name
			bestScore = score
		}
	}
	return best
}

func scoreIndustry(industry Industry, corpus, name, description string) int {
	score := 0
	for _, keyword := range industry.Keywords {
		occurrences := strings.Count(corpus, keyword)
		if occurrences == 0 {
			continue
		}
		if occurrences > maxKeywordScore {
			occurrences = maxKeywordScore
		}
		score += occurrences

		if strings.Contains(name, keyword) || strings.Contains(description, keyword) {
			score += nameDescriptionBonus
		}
	}
	return score
}
