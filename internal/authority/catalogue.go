// Package authority provides the catalogue cache with TTL-based freshness.
package authority

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/scamtrap/mantis/internal/models"
)

// Catalogue owns all authority profiles. Entries come from the seed table or
// from best-effort discovery, stay fresh for the configured TTL, and are only
// ever replaced whole. Callers get snapshots, never references into the cache.
type Catalogue struct {
	mu    sync.Mutex
	cache map[string]*models.AuthorityProfile

	seeds []models.AuthorityProfile
	ttl   time.Duration

	// prober is nil when discovery is disabled.
	prober *Prober

	now func() time.Time
}

// NewCatalogue creates a catalogue with the default seed table. A nil prober
// disables discovery; lookups then only serve cached and seeded entries.
func NewCatalogue(ttl time.Duration, prober *Prober) *Catalogue {
	return &Catalogue{
		cache:  make(map[string]*models.AuthorityProfile),
		seeds:  defaultSeeds(),
		ttl:    ttl,
		prober: prober,
		now:    time.Now,
	}
}

// Lookup returns a snapshot of the profile for name, or nil when the authority
// is unknown. A stale cached entry is treated as absent and repopulated from
// the seed table or discovery. Discovery happens outside the cache lock;
// concurrent lookups for the same key may race to populate, last writer wins.
func (c *Catalogue) Lookup(ctx context.Context, name string) *models.AuthorityProfile {
	key := normalizeKey(name)
	if key == "" {
		return nil
	}

	c.mu.Lock()
	if existing, ok := c.cache[key]; ok && c.fresh(existing) {
		snap := snapshot(existing)
		c.mu.Unlock()
		return snap
	}
	c.mu.Unlock()

	if seed := c.seeded(key); seed != nil {
		seed.LastRefreshed = c.now()
		c.store(key, seed)
		return snapshot(seed)
	}

	if c.prober == nil {
		return nil
	}

	profile := c.prober.Discover(ctx, key)
	if profile == nil {
		log.Debug().Str("authority", key).Msg("No profile found for authority")
		return nil
	}
	profile.LastRefreshed = c.now()
	c.store(key, profile)
	return snapshot(profile)
}

// ForceRefresh evicts any cached entry for name and re-runs the lookup path,
// guaranteeing a fresh timestamp even when the prior entry was still fresh.
func (c *Catalogue) ForceRefresh(ctx context.Context, name string) *models.AuthorityProfile {
	key := normalizeKey(name)
	if key == "" {
		return nil
	}

	c.mu.Lock()
	delete(c.cache, key)
	c.mu.Unlock()

	return c.Lookup(ctx, key)
}

// SeededNames lists the seed table names in declaration order.
func (c *Catalogue) SeededNames() []string {
	names := make([]string, len(c.seeds))
	for i, seed := range c.seeds {
		names[i] = seed.Name
	}
	return names
}

func (c *Catalogue) fresh(p *models.AuthorityProfile) bool {
	return c.now().Sub(p.LastRefreshed) < c.ttl
}

// seeded returns a copy of the seed entry for key, if one exists.
func (c *Catalogue) seeded(key string) *models.AuthorityProfile {
	for i := range c.seeds {
		if c.seeds[i].Name == key {
			return snapshot(&c.seeds[i])
		}
	}
	return nil
}

func (c *Catalogue) store(key string, p *models.AuthorityProfile) {
	c.mu.Lock()
	c.cache[key] = p
	c.mu.Unlock()
}

func normalizeKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// snapshot copies a profile so callers cannot mutate cache state.
func snapshot(p *models.AuthorityProfile) *models.AuthorityProfile {
	cp := *p
	cp.OfficialDomains = append([]string(nil), p.OfficialDomains...)
	cp.OfficialChannels = append([]string(nil), p.OfficialChannels...)
	cp.NeverAsks = append([]string(nil), p.NeverAsks...)
	cp.NeverRequests = append([]string(nil), p.NeverRequests...)
	return &cp
}
