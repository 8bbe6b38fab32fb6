package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/scamtrap/mantis/internal/models"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAPIKeyRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	key := &models.APIKey{
		ID:                "id-1",
		KeyHash:           "hash-1",
		Name:              "test",
		RequestsPerMinute: 60,
		CreatedAt:         time.Now().UTC(),
	}
	if err := store.CreateAPIKey(ctx, key); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.GetAPIKeyByHash(ctx, "hash-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != "id-1" || got.Name != "test" {
		t.Fatalf("got %+v", got)
	}
	if got.LastUsedAt != nil {
		t.Fatalf("last_used_at should start null")
	}

	if err := store.UpdateAPIKeyLastUsed(ctx, "id-1", time.Now().UTC()); err != nil {
		t.Fatalf("update last used: %v", err)
	}
	got, _ = store.GetAPIKeyByHash(ctx, "hash-1")
	if got.LastUsedAt == nil {
		t.Fatalf("last_used_at not updated")
	}

	if err := store.DeleteAPIKey(ctx, "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = store.GetAPIKeyByHash(ctx, "hash-1")
	if got != nil {
		t.Fatalf("key survived delete: %+v", got)
	}
}

func TestGetAPIKeyByHash_Miss(t *testing.T) {
	store := newStore(t)
	got, err := store.GetAPIKeyByHash(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestAuditLogPagination(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		entry := &models.AuditLog{
			ID:           string(rune('a' + i)),
			APIKeyID:     "key-1",
			Endpoint:     "/api/v1/honeypot/message",
			Method:       "POST",
			RequestSize:  128,
			ResponseCode: 200,
			DurationMs:   5,
			Timestamp:    base.Add(time.Duration(i) * time.Second),
		}
		if err := store.LogRequest(ctx, entry); err != nil {
			t.Fatalf("log request: %v", err)
		}
	}

	logs, err := store.GetAuditLogs(ctx, 2, 0)
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	// Newest first.
	if !logs[0].Timestamp.After(logs[1].Timestamp) {
		t.Fatalf("logs not ordered by timestamp desc")
	}

	rest, err := store.GetAuditLogs(ctx, 2, 2)
	if err != nil {
		t.Fatalf("get logs offset: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("got %d logs at offset 2, want 1", len(rest))
	}
}
