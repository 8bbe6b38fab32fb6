// Package detect provides authority rule validation and claimed-authority
// extraction.
package detect

import (
	"strings"

	"github.com/scamtrap/mantis/internal/models"
)

// Escalation weights for rule violations.
const (
	bankNeverAsksWeight     = 30
	bankNeverRequestsWeight = 25
	govtNeverWeight         = 40
	govtNeverAsksWeight     = 30
)

// ApplyRuleValidation escalates the score when the message requests something
// the represented authority never asks for. Static bank and government rules
// run first; the optional live profile (from the catalogue) runs last so a
// dynamically discovered authority can trigger escalation on its own. Each
// rule set escalates at most once per list. The result is clamped to [0,100].
func ApplyRuleValidation(textLower string, score int, profile *models.AuthorityProfile) int {
	for _, rule := range bankRules {
		if !strings.Contains(textLower, strings.ToLower(rule.Name)) && !strings.Contains(textLower, "bank") {
			continue
		}
		score += firstViolation(textLower, rule.NeverAsks, bankNeverAsksWeight)
		score += firstViolation(textLower, rule.NeverRequests, bankNeverRequestsWeight)
	}

	for _, rule := range govtRules {
		if !anyTokenPresent(textLower, rule.Key) {
			continue
		}
		score += firstViolation(textLower, rule.Never, govtNeverWeight)
		score += firstViolation(textLower, rule.NeverAsks, govtNeverAsksWeight)
	}

	if profile != nil {
		score += firstViolation(textLower, profile.NeverAsks, bankNeverAsksWeight)
		score += firstViolation(textLower, profile.NeverRequests, bankNeverRequestsWeight)
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// firstViolation returns weight when any phrase appears in the text, checking
// phrases in order and stopping at the first hit.
func firstViolation(textLower string, phrases []string, weight int) int {
	for _, phrase := range phrases {
		if strings.Contains(textLower, strings.ToLower(phrase)) {
			return weight
		}
	}
	return 0
}

// anyTokenPresent reports whether any underscore-separated token of a
// government rule key appears in the text.
func anyTokenPresent(textLower, key string) bool {
	for _, token := range strings.Split(strings.ToLower(key), "_") {
		if strings.Contains(textLower, token) {
			return true
		}
	}
	return false
}

// ExtractClaimedAuthority scans lowercased text for the entity the message
// purports to represent: static bank keys first, then government keys (either
// the space-joined or raw form), then the catalogue's seeded names. The first
// match in that fixed order wins; nothing matching yields "".
func ExtractClaimedAuthority(textLower string, seededNames []string) string {
	for _, rule := range bankRules {
		if strings.Contains(textLower, strings.ToLower(rule.Name)) {
			return rule.Name
		}
	}

	for _, rule := range govtRules {
		keyLower := strings.ToLower(rule.Key)
		spaced := strings.ReplaceAll(keyLower, "_", " ")
		if strings.Contains(textLower, spaced) || strings.Contains(textLower, keyLower) {
			return rule.Key
		}
	}

	for _, name := range seededNames {
		if strings.Contains(textLower, strings.ToLower(name)) {
			return name
		}
	}

	return ""
}
