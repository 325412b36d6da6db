package layout

import "math"

// Bounds wraps its children: the container becomes as large as its largest
// child, clamped to [Min, Max]. A fixed axis keeps the container's own size.
// Each child's anchor is pinned to the matching anchor of the container.
type Bounds struct {
	FixedX, FixedY bool
	Min            Size2
	// Max bounds the size; a non-positive resolved component is unbounded.
	Max Size2
}

// Kind implements Layout.
func (Bounds) Kind() string { return "bounds" }

// Place implements Layout.
func (b Bounds) Place(info Info, items []Item, rng *Range) Output {
	offered := len(items)
	visible := window(items, rng)

	var size Vec2
	for _, it := range visible {
		size = size.Max(it.Dimension)
	}

	lo := b.Min.Resolve(info.Dimension, info.Em, info.Rem)
	hi := b.Max.Resolve(info.Dimension, info.Em, info.Rem)
	size.X = clampBound(size.X, lo.X, hi.X)
	size.Y = clampBound(size.Y, lo.Y, hi.Y)
	if b.FixedX {
		size.X = info.Dimension.X
	}
	if b.FixedY {
		size.Y = info.Dimension.Y
	}

	out := Output{Dimension: size, Placements: make([]Placement, 0, len(visible))}
	for _, it := range visible {
		out.Placements = append(out.Placements, Placement{ID: it.ID, Point: it.Anchor.Of(size)})
	}
	return finish(out, offered)
}

func clampBound(v, lo, hi float64) float64 {
	if hi <= 0 {
		hi = math.Inf(1)
	}
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
