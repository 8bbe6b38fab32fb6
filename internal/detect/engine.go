// Package detect provides the detection engine orchestrating the pipeline.
package detect

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/scamtrap/mantis/internal/authority"
	"github.com/scamtrap/mantis/internal/models"
)

// DefaultScamThreshold is the score at which a verdict flips to scam.
const DefaultScamThreshold = 35

// Engine runs the full classification pipeline over a single message. It is
// stateless per call; the only shared state it touches is the catalogue cache.
type Engine struct {
	catalogue *authority.Catalogue
	threshold int
}

// NewEngine creates a detection engine. A threshold of 0 selects the default.
func NewEngine(catalogue *authority.Catalogue, threshold int) *Engine {
	if threshold <= 0 {
		threshold = DefaultScamThreshold
	}
	return &Engine{
		catalogue: catalogue,
		threshold: threshold,
	}
}

// Detect classifies raw message text. It always produces a verdict: empty or
// unmatchable input scores zero, and catalogue failures degrade to an absent
// authority profile rather than an error.
func (e *Engine) Detect(ctx context.Context, text string) models.DetectionVerdict {
	textLower := strings.ToLower(text)

	intel := ExtractIntel(text)

	category, score, suspicious := ScoreCategories(textLower)

	var profile *models.AuthorityProfile
	claimed := ExtractClaimedAuthority(textLower, e.catalogue.SeededNames())
	if claimed != "" {
		profile = e.catalogue.Lookup(ctx, claimed)
	}

	score = ApplyRuleValidation(textLower, score, profile)

	isScam := score >= e.threshold
	if !isScam {
		// Category is informational only on positive verdicts.
		category = ""
	}

	log.Debug().
		Bool("is_scam", isScam).
		Str("category", category).
		Int("score", score).
		Str("claimed_authority", claimed).
		Msg("Detection complete")

	return models.DetectionVerdict{
		IsScam:   isScam,
		Category: category,
		Score:    score,
		Intelligence: models.ExtractedIntelligence{
			PaymentHandles:     intel.PaymentHandles,
			PhoneNumbers:       intel.PhoneNumbers,
			Links:              intel.Links,
			AccountLikeNumbers: intel.AccountLikeNumbers,
			SuspiciousKeywords: suspicious,
			AuthorityProfile:   profile,
		},
	}
}
