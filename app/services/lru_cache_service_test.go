package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/chile-cleaner/app/models"
)

func TestLRUCacheRoundTrip(t *testing.T) {
	cs, err := NewLRUCacheService(2, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLRUCacheService() failed: %v", err)
	}
	ctx := context.Background()

	if _, found, _ := cs.Get(ctx, "valpo"); found {
		t.Error("empty cache reported a hit")
	}

	want := &models.ResolveResult{Input: "valpo", NormalizedKey: "valpo", Matched: true, Code: 5, OfficialName: "Valparaíso"}
	if err := cs.Set(ctx, "valpo", want); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, found, err := cs.Get(ctx, "valpo")
	if err != nil || !found {
		t.Fatalf("Get() = (found=%v, err=%v), want hit", found, err)
	}
	if got.Code != 5 {
		t.Errorf("cached Code = %d, want 5", got.Code)
	}

	stats := cs.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, size 1", stats)
	}
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	cs, err := NewLRUCacheService(2, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLRUCacheService() failed: %v", err)
	}
	ctx := context.Background()

	cs.Set(ctx, "a", &models.ResolveResult{Input: "a"})
	cs.Set(ctx, "b", &models.ResolveResult{Input: "b"})
	cs.Set(ctx, "c", &models.ResolveResult{Input: "c"})

	if _, found, _ := cs.Get(ctx, "a"); found {
		t.Error("oldest entry survived past capacity")
	}
	if _, found, _ := cs.Get(ctx, "c"); !found {
		t.Error("newest entry was evicted")
	}
}

func TestLRUCacheClearAndDelete(t *testing.T) {
	cs, err := NewLRUCacheService(8, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLRUCacheService() failed: %v", err)
	}
	ctx := context.Background()

	cs.Set(ctx, "rm", &models.ResolveResult{Input: "rm"})
	cs.Set(ctx, "valpo", &models.ResolveResult{Input: "valpo"})

	if err := cs.Delete(ctx, "rm"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, found, _ := cs.Get(ctx, "rm"); found {
		t.Error("deleted entry still present")
	}

	if err := cs.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if got := cs.Stats().Size; got != 0 {
		t.Errorf("Size after Clear() = %d, want 0", got)
	}
}
