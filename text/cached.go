package text

import (
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/cache"
)

type measureKey struct {
	text string
	size float64
}

func hashMeasureKey(k measureKey) uint64 {
	return cache.MixFloat(cache.StringHasher(k.text), k.size)
}

// Cached memoizes another Measurer. Labels rarely change between frames,
// so most passes measure nothing.
type Cached struct {
	m     Measurer
	cache *cache.Sharded[measureKey, layout.Vec2]
}

// NewCached wraps m. Options size the underlying cache.
func NewCached(m Measurer, opts ...cache.Option) *Cached {
	return &Cached{
		m:     m,
		cache: cache.New[measureKey, layout.Vec2](hashMeasureKey, opts...),
	}
}

// Measure implements Measurer.
func (c *Cached) Measure(s string, size float64) layout.Vec2 {
	return c.cache.GetOrCreate(measureKey{s, size}, func() layout.Vec2 {
		return c.m.Measure(s, size)
	})
}

// Stats reports cache effectiveness.
func (c *Cached) Stats() cache.Stats {
	return c.cache.Stats()
}

// Purge drops every memoized measurement, for example after a font change.
func (c *Cached) Purge() {
	c.cache.Clear()
}
