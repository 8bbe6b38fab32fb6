// Package detect provides intelligence extraction from raw message text.
package detect

import (
	"regexp"
)

const maxPerList = 5

// Pre-compiled extraction patterns (compiled once, used per message).
var (
	reHandle  = regexp.MustCompile(`[\w.-]+@[a-zA-Z]+`)
	rePhone   = regexp.MustCompile(`\b\d{10}\b`)
	reLink    = regexp.MustCompile(`https?://\S+`)
	reAccount = regexp.MustCompile(`\b\d{10,16}\b`)
)

// Intel is the raw extraction output before the authority profile is attached.
type Intel struct {
	PaymentHandles     []string
	PhoneNumbers       []string
	Links              []string
	AccountLikeNumbers []string
}

// ExtractIntel scans raw text for payment handles, phone numbers, links and
// account-like numeric strings. Case is preserved; every list is first-seen
// deduplicated and capped at five. A 10-digit token lands in both the phone
// and account lists; that overlap is intentional.
func ExtractIntel(text string) Intel {
	return Intel{
		PaymentHandles:     matchCapped(reHandle, text),
		PhoneNumbers:       matchCapped(rePhone, text),
		Links:              matchCapped(reLink, text),
		AccountLikeNumbers: matchCapped(reAccount, text),
	}
}

// matchCapped collects unique matches in first-seen order, up to maxPerList.
func matchCapped(re *regexp.Regexp, text string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, m := range re.FindAllString(text, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == maxPerList {
			break
		}
	}
	return out
}
