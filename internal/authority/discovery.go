package authority

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/scamtrap/mantis/internal/models"
)

// bankMarkers are key substrings that suggest a discovered authority is a bank.
var bankMarkers = []string{"BANK", "SBI", "HDFC", "ICICI"}

// Prober attempts to discover an authority profile by probing derived domain
// candidates. Every failure is swallowed; a nil result means "nothing found".
type Prober struct {
	httpClient *http.Client

	// candidateURLs derives the probe targets for a normalized key.
	// Overridable in tests.
	candidateURLs func(key string) []string
}

// NewProber creates a prober with an independent per-candidate timeout.
func NewProber(timeout time.Duration) *Prober {
	return &Prober{
		httpClient:    &http.Client{Timeout: timeout},
		candidateURLs: defaultCandidateURLs,
	}
}

func defaultCandidateURLs(key string) []string {
	lower := strings.ToLower(key)
	return []string{
		fmt.Sprintf("https://%s.com", lower),
		fmt.Sprintf("https://%s.co.in", lower),
		fmt.Sprintf("https://%s.org", lower),
	}
}

// Discover probes the candidate domains for key and synthesizes a minimal
// profile from the first host that answers 200. Returns nil when no candidate
// responds; network errors are logged and treated as misses.
func (p *Prober) Discover(ctx context.Context, key string) *models.AuthorityProfile {
	for _, candidate := range p.candidateURLs(key) {
		title, ok := p.probe(ctx, candidate)
		if !ok {
			continue
		}

		host := strings.TrimPrefix(strings.TrimPrefix(candidate, "https://"), "http://")
		log.Info().Str("authority", key).Str("domain", host).Msg("Discovered authority profile")

		return &models.AuthorityProfile{
			Name:             key,
			Kind:             inferKind(key),
			OfficialDomains:  []string{host},
			OfficialChannels: []string{models.ChannelWebsite},
			NeverAsks:        []string{"otp", "password"},
			NeverRequests:    []string{},
			SiteTitle:        title,
		}
	}
	return nil
}

// probe fetches a single candidate and reports whether it answered 200,
// along with the page title when one could be parsed.
func (p *Prober) probe(ctx context.Context, candidate string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, "GET", candidate, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", "Mantis/1.0 (Scam triage)")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Debug().Str("candidate", candidate).Err(err).Msg("Discovery probe failed")
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	return extractTitle(io.LimitReader(resp.Body, 64*1024)), true
}

// extractTitle pulls the <title> text out of an HTML page, if any.
func extractTitle(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)
	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			inTitle = string(name) == "title"
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}

func inferKind(key string) models.AuthorityKind {
	for _, marker := range bankMarkers {
		if strings.Contains(key, marker) {
			return models.KindBank
		}
	}
	return models.KindGovt
}
