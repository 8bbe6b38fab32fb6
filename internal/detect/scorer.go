// Package detect provides category scoring against the static scam table.
package detect

import (
	"strings"
)

const (
	keywordIncrement = 10
	signalIncrement  = 15
	keywordsRecorded = 3
	maxScore         = 100
)

// ScoreCategories matches lowercased text against the category table and picks
// the best-scoring category. Each present keyword adds a fixed increment
// (presence, not frequency); each matching signal adds a larger one; the base
// weight is added once when anything matched. Ties go to the first-declared
// category. The returned score is already clamped to 100; rule validation
// clamps again after its additions.
//
// Recorded keywords from every matching category (up to three each, in table
// order) are returned for the intelligence payload, not just the winner's.
func ScoreCategories(textLower string) (category string, score int, suspicious []string) {
	suspicious = []string{}

	for _, cat := range scamCategories {
		catScore := 0
		var matched []string

		for _, kw := range cat.Keywords {
			if strings.Contains(textLower, kw) {
				catScore += keywordIncrement
				if len(matched) < keywordsRecorded {
					matched = append(matched, kw)
				}
			}
		}

		for _, sig := range cat.Signals {
			if sig.MatchString(textLower) {
				catScore += signalIncrement
			}
		}

		if catScore == 0 {
			continue
		}
		catScore += cat.BaseWeight

		suspicious = append(suspicious, matched...)

		// Strict max: a later category must beat, not tie, the current best.
		if catScore > score {
			score = catScore
			category = cat.Name
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return category, score, suspicious
}
