// Package cache provides a concurrent LRU cache used to memoize text
// measurements between layout passes.
package cache

import (
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
)

const (
	// DefaultShards is the number of shards used when none is configured.
	DefaultShards = 16

	// DefaultCapacity is the per-shard capacity used when none is configured.
	DefaultCapacity = 256
)

// Hasher computes the hash used to pick a key's shard.
type Hasher[K any] func(K) uint64

// StringHasher hashes a string with FNV-1a.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// MixFloat folds a float64 into an FNV-1a style hash. It lets composite
// keys such as (text, size) build a Hasher without allocating.
func MixFloat(h uint64, f float64) uint64 {
	const prime = 1099511628211
	bits := math.Float64bits(f)
	for range 8 {
		h ^= bits & 0xff
		h *= prime
		bits >>= 8
	}
	return h
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Option configures a Sharded cache.
type Option func(*config)

type config struct {
	shards   int
	capacity int
}

// WithShards sets the shard count. It is rounded up to a power of two.
func WithShards(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shards = n
		}
	}
}

// WithCapacity sets the number of entries each shard may hold.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Sharded is a thread-safe LRU cache split into independently locked
// shards. Each shard evicts its own least recently used entry when full.
type Sharded[K comparable, V any] struct {
	shards   []*shard[K, V]
	mask     uint64
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*slot[K, V]
	lru     *lruList[K]
}

type slot[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a sharded cache that picks shards with hasher.
func New[K comparable, V any](hasher Hasher[K], opts ...Option) *Sharded[K, V] {
	cfg := config{shards: DefaultShards, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := 1
	for n < cfg.shards {
		n <<= 1
	}

	c := &Sharded[K, V]{
		shards:   make([]*shard[K, V], n),
		mask:     uint64(n - 1),
		hasher:   hasher,
		capacity: cfg.capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*slot[K, V]),
			lru:     newLRUList[K](),
		}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&c.mask]
}

// Get returns the value for key and marks it recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

// Set stores value under key, evicting the shard's oldest entry if full.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.store(s, key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs with the shard locked, so concurrent callers asking for the
// same key compute it once. Keep create short.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v := create()
	c.store(s, key, v)
	return v
}

// store inserts or updates key; s must be locked.
func (c *Sharded[K, V]) store(s *shard[K, V], key K, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.MoveToFront(e.node)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
	}
	s.entries[key] = &slot[K, V]{value: value, node: s.lru.PushFront(key)}
}

// Delete removes key and reports whether it was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes every entry. Counters are kept.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		clear(s.entries)
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Capacity returns the total capacity across all shards.
func (c *Sharded[K, V]) Capacity() int {
	return c.capacity * len(c.shards)
}

// Stats returns a snapshot of the counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.Capacity(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// ResetStats zeroes the counters.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
