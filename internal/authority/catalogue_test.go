package authority

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests advance catalogue time deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestCatalogue(t *testing.T, prober *Prober) (*Catalogue, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCatalogue(6*time.Hour, prober)
	c.now = clock.Now
	return c, clock
}

func TestLookup_Seeded(t *testing.T) {
	c, clock := newTestCatalogue(t, nil)

	profile := c.Lookup(context.Background(), "SBI")
	if profile == nil {
		t.Fatalf("expected seeded profile")
	}
	if profile.Name != "SBI" || profile.Kind != "BANK" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if !profile.LastRefreshed.Equal(clock.Now()) {
		t.Fatalf("profile not stamped with current time")
	}
}

func TestLookup_KeyNormalization(t *testing.T) {
	c, _ := newTestCatalogue(t, nil)

	profile := c.Lookup(context.Background(), "  sbi ")
	if profile == nil || profile.Name != "SBI" {
		t.Fatalf("normalized lookup failed: %+v", profile)
	}
	if c.Lookup(context.Background(), "") != nil {
		t.Fatalf("empty name must miss")
	}
}

func TestLookup_FreshWithinTTL(t *testing.T) {
	c, clock := newTestCatalogue(t, nil)

	first := c.Lookup(context.Background(), "HDFC")
	clock.Advance(3 * time.Hour)
	second := c.Lookup(context.Background(), "HDFC")

	if !first.LastRefreshed.Equal(second.LastRefreshed) {
		t.Fatalf("refresh time changed within TTL: %v vs %v", first.LastRefreshed, second.LastRefreshed)
	}
}

func TestLookup_StaleEntryRepopulated(t *testing.T) {
	c, clock := newTestCatalogue(t, nil)

	first := c.Lookup(context.Background(), "RBI")
	clock.Advance(7 * time.Hour)
	second := c.Lookup(context.Background(), "RBI")

	if !second.LastRefreshed.After(first.LastRefreshed) {
		t.Fatalf("stale entry not restamped: %v vs %v", first.LastRefreshed, second.LastRefreshed)
	}
}

func TestForceRefresh_AlwaysRestamps(t *testing.T) {
	c, clock := newTestCatalogue(t, nil)

	first := c.Lookup(context.Background(), "POLICE")
	clock.Advance(time.Minute)
	refreshed := c.ForceRefresh(context.Background(), "POLICE")

	if refreshed == nil {
		t.Fatalf("expected profile after refresh")
	}
	if refreshed.LastRefreshed.Before(first.LastRefreshed) {
		t.Fatalf("refresh went backwards: %v -> %v", first.LastRefreshed, refreshed.LastRefreshed)
	}
	if !refreshed.LastRefreshed.After(first.LastRefreshed) {
		t.Fatalf("forceRefresh did not restamp within TTL")
	}
}

func TestLookup_UnknownWithoutDiscovery(t *testing.T) {
	c, _ := newTestCatalogue(t, nil)
	if p := c.Lookup(context.Background(), "NOSUCHCORP"); p != nil {
		t.Fatalf("expected nil, got %+v", p)
	}
}

func TestLookup_SnapshotIsolation(t *testing.T) {
	c, _ := newTestCatalogue(t, nil)

	first := c.Lookup(context.Background(), "SBI")
	first.NeverAsks[0] = "tampered"
	first.Name = "TAMPERED"

	second := c.Lookup(context.Background(), "SBI")
	if second.NeverAsks[0] != "otp" || second.Name != "SBI" {
		t.Fatalf("cache state leaked through snapshot: %+v", second)
	}
}

func TestSeededNames(t *testing.T) {
	c, _ := newTestCatalogue(t, nil)
	names := c.SeededNames()
	want := []string{"SBI", "HDFC", "RBI", "POLICE"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func probeServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Prober) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prober := NewProber(3 * time.Second)
	prober.candidateURLs = func(key string) []string {
		return []string{srv.URL}
	}
	return srv, prober
}

func TestLookup_Discovery(t *testing.T) {
	_, prober := probeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title>Example Corp</title></head><body></body></html>"))
	})

	c, clock := newTestCatalogue(t, prober)
	profile := c.Lookup(context.Background(), "EXAMPLECORP")
	if profile == nil {
		t.Fatalf("expected discovered profile")
	}
	if profile.Kind != "GOVT" {
		t.Fatalf("kind = %q, want GOVT for non bank-like key", profile.Kind)
	}
	if profile.SiteTitle != "Example Corp" {
		t.Fatalf("site title = %q", profile.SiteTitle)
	}
	if len(profile.OfficialDomains) != 1 {
		t.Fatalf("domains = %v", profile.OfficialDomains)
	}
	if !profile.LastRefreshed.Equal(clock.Now()) {
		t.Fatalf("discovered profile not stamped")
	}

	// Discovered entry is cached: a second lookup keeps the timestamp.
	again := c.Lookup(context.Background(), "EXAMPLECORP")
	if !again.LastRefreshed.Equal(profile.LastRefreshed) {
		t.Fatalf("discovery re-ran within TTL")
	}
}

func TestLookup_DiscoveryBankKindInference(t *testing.T) {
	_, prober := probeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	c, _ := newTestCatalogue(t, prober)
	profile := c.Lookup(context.Background(), "NEWBANK")
	if profile == nil || profile.Kind != "BANK" {
		t.Fatalf("expected BANK kind, got %+v", profile)
	}
}

func TestLookup_DiscoveryFailureSwallowed(t *testing.T) {
	_, prober := probeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c, _ := newTestCatalogue(t, prober)
	if p := c.Lookup(context.Background(), "DEADCORP"); p != nil {
		t.Fatalf("expected nil on non-200 probe, got %+v", p)
	}
}

func TestLookup_DiscoveryConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	prober := NewProber(time.Second)
	prober.candidateURLs = func(key string) []string { return []string{url} }

	c, _ := newTestCatalogue(t, prober)
	if p := c.Lookup(context.Background(), "GONECORP"); p != nil {
		t.Fatalf("expected nil on connection error, got %+v", p)
	}
}

func TestLookup_ConcurrentSameKey(t *testing.T) {
	_, prober := probeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<title>Racer</title>"))
	})

	c, _ := newTestCatalogue(t, prober)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p := c.Lookup(context.Background(), "RACER"); p == nil {
				t.Errorf("concurrent lookup returned nil")
			}
		}()
	}
	wg.Wait()
}
