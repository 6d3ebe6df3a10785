package cache

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(maxItems int, ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)}
	c := New[string](Config{MaxItems: maxItems, TTL: ttl})
	c.now = clock.now
	return c, clock
}

func TestGetSet(t *testing.T) {
	c, _ := newTestCache(4, 0)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Expected miss on empty cache")
	}

	c.Set("a", "1")
	c.Set("a", "2")
	if v, ok := c.Get("a"); !ok || v != "2" {
		t.Errorf("Expected 2, got %q (ok=%v)", v, ok)
	}
	stats := c.Stats()
	if stats.Size != 1 {
		t.Errorf("Expected size 1, got %d", stats.Size)
	}
	if stats.Hits != 1 || stats.Misses != 1 || stats.HitRate != 50 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestLeastRecentlyUsedIsEvicted(t *testing.T) {
	c, _ := newTestCache(2, 0)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a")
	c.Set("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Error("Expected b to be evicted")
	}
	for _, key := range []string{"a", "c"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Expected %s to be cached", key)
		}
	}
}

func TestExpiration(t *testing.T) {
	c, clock := newTestCache(4, time.Minute)

	c.Set("a", "1")
	clock.t = clock.t.Add(30 * time.Second)
	c.Set("b", "2")

	clock.t = clock.t.Add(45 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("Expected a to be expired")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("Expected b to be cached")
	}
}

func TestExpiredEntryIsEvictedFirst(t *testing.T) {
	c, clock := newTestCache(2, time.Minute)

	c.Set("a", "1")
	clock.t = clock.t.Add(30 * time.Second)
	c.Set("b", "2")
	clock.t = clock.t.Add(10 * time.Second)
	c.Get("a")

	// a is the most recently used entry but has expired
	clock.t = clock.t.Add(30 * time.Second)
	c.Set("c", "3")

	if _, ok := c.Get("b"); !ok {
		t.Error("Expected b to survive eviction")
	}
	if size := c.Stats().Size; size != 2 {
		t.Errorf("Expected size 2, got %d", size)
	}
}

func TestGetOrSet(t *testing.T) {
	c, _ := newTestCache(4, 0)
	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrSet("k", compute)
		if err != nil || v != "value" {
			t.Fatalf("GetOrSet() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("Expected 1 computation, got %d", calls)
	}

	_, err := c.GetOrSet("bad", func() (string, error) { return "", errors.New("boom") })
	if err == nil {
		t.Error("Expected error from GetOrSet")
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("Failed computation should not be cached")
	}
}

func TestKey(t *testing.T) {
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("Key parts must not run together")
	}
	if Key("x") != Key("x") {
		t.Error("Key must be deterministic")
	}
	if len(Key("x")) != 64 {
		t.Errorf("Expected hex sha256, got %q", Key("x"))
	}
}
