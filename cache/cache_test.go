package cache

import (
	"strconv"
	"sync"
	"testing"
)

func newTestCache(opts ...Option) *Sharded[string, int] {
	return New[string, int](StringHasher, opts...)
}

func TestNewRoundsShards(t *testing.T) {
	tests := []struct {
		shards int
		want   int
	}{
		{1, 1},
		{3, 4},
		{16, 16},
		{17, 32},
	}
	for _, tt := range tests {
		c := newTestCache(WithShards(tt.shards), WithCapacity(2))
		if len(c.shards) != tt.want {
			t.Errorf("WithShards(%d): %d shards, want %d", tt.shards, len(c.shards), tt.want)
		}
		if c.Capacity() != 2*tt.want {
			t.Errorf("Capacity() = %d, want %d", c.Capacity(), 2*tt.want)
		}
	}
	if c := newTestCache(WithShards(0), WithCapacity(-1)); c.Capacity() != DefaultShards*DefaultCapacity {
		t.Errorf("invalid options not ignored: Capacity() = %d", c.Capacity())
	}
}

func TestGetSet(t *testing.T) {
	c := newTestCache()
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a missing key")
	}
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after update = %d, want 2", v)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Len != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	if r := s.HitRate(); r < 0.66 || r > 0.67 {
		t.Errorf("HitRate() = %v", r)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := newTestCache()
	calls := 0
	create := func() int {
		calls++
		return 100
	}
	if v := c.GetOrCreate("k", create); v != 100 {
		t.Errorf("first GetOrCreate = %d", v)
	}
	if v := c.GetOrCreate("k", func() int { return 200 }); v != 100 {
		t.Errorf("second GetOrCreate = %d, want the cached 100", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := newTestCache(WithShards(1), WithCapacity(2))
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a was used recently and should remain")
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.Stats().Evictions)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := newTestCache()
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete should succeed once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.ResetStats()
	if s := c.Stats(); s.Hits+s.Misses+s.Evictions != 0 {
		t.Errorf("ResetStats left %+v", s)
	}
}

func TestMixFloat(t *testing.T) {
	base := StringHasher("label")
	if MixFloat(base, 12) == MixFloat(base, 13) {
		t.Error("different sizes hash equal")
	}
	if MixFloat(base, 12) != MixFloat(base, 12) {
		t.Error("MixFloat is not deterministic")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := newTestCache(WithCapacity(8))
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g * i) % 50)
				c.GetOrCreate(k, func() int { return i })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds Capacity() = %d", c.Len(), c.Capacity())
	}
}
