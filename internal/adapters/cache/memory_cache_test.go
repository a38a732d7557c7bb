package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

// TestMemoryCacheSetGet verifies the round trip and the miss path.
func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "42_resume.pdf"); ok {
		t.Error("Get on an empty cache reported a hit")
	}

	c.Set(ctx, "42_resume.pdf", "a narrative", time.Hour)

	narrative, ok := c.Get(ctx, "42_resume.pdf")
	if !ok {
		t.Fatal("Get after Set missed")
	}
	if narrative != "a narrative" {
		t.Errorf("narrative = %q", narrative)
	}
}

// TestMemoryCacheExpiry verifies expired entries read as misses.
func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "42_resume.pdf", "a narrative", -time.Minute)

	if _, ok := c.Get(ctx, "42_resume.pdf"); ok {
		t.Error("Get returned an expired entry")
	}
}

// TestMemoryCacheCleanup verifies expired entries are purged and live ones
// survive.
func TestMemoryCacheCleanup(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "stale", "old", -time.Minute)
	c.Set(ctx, "fresh", "new", time.Hour)

	if err := c.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	c.mu.RLock()
	_, staleLeft := c.entries["stale"]
	_, freshLeft := c.entries["fresh"]
	c.mu.RUnlock()

	if staleLeft {
		t.Error("expired entry survived Cleanup")
	}
	if !freshLeft {
		t.Error("live entry removed by Cleanup")
	}
}

// TestMemoryCacheDelete verifies explicit removal.
func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "42_resume.pdf", "a narrative", time.Hour)
	if err := c.Delete(ctx, "42_resume.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := c.Get(ctx, "42_resume.pdf"); ok {
		t.Error("Get returned a deleted entry")
	}
}
