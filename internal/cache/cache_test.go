package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ahmetberacelik/legalcase/internal/cache"
	"github.com/ahmetberacelik/legalcase/internal/database"
)

func TestCacheStats(t *testing.T) {
	c := cache.NewCache(10, time.Minute)

	record := &database.Case{CaseNumber: "C-1", Title: "T"}
	key := cache.GenerateCacheKey(record.CaseNumber)

	if _, found := c.Get(key); found {
		t.Fatal("expected miss on empty cache")
	}
	if err := c.Set(key, record); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got, found := c.Get(key); !found || got.CaseNumber != "C-1" {
		t.Fatalf("expected hit, got found=%v record=%+v", found, got)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Size != 1 {
		t.Errorf("expected 1 hit / 1 miss / size 1, got %+v", stats)
	}

	c.Clear()
	if stats := c.Stats(); stats.Size != 0 || stats.Hits != 0 {
		t.Errorf("expected empty stats after clear, got %+v", stats)
	}
}

func TestCacheEvictsAtMaxSize(t *testing.T) {
	c := cache.NewCache(2, time.Minute)

	for i := 0; i < 3; i++ {
		key := cache.GenerateCacheKey(fmt.Sprintf("C-%d", i))
		if err := c.Set(key, &database.Case{CaseNumber: fmt.Sprintf("C-%d", i)}); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	if stats := c.Stats(); stats.Size > 2 {
		t.Errorf("expected at most 2 entries, got %d", stats.Size)
	}
}

// Stats must be safe against concurrent lookups; the race detector covers
// the locking here.
func TestCacheConcurrentAccess(t *testing.T) {
	c := cache.NewCache(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := cache.GenerateCacheKey(fmt.Sprintf("C-%d", n))
			for j := 0; j < 100; j++ {
				c.Set(key, &database.Case{CaseNumber: fmt.Sprintf("C-%d", n)})
				c.Get(key)
				c.Stats()
			}
		}(i)
	}
	wg.Wait()

	if stats := c.Stats(); stats.Hits == 0 {
		t.Errorf("expected recorded hits, got %+v", stats)
	}
}
