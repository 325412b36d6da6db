package layout

import "math"

// RangeKind selects how a Range windows a container's children.
type RangeKind uint8

const (
	// RangeAll shows every child.
	RangeAll RangeKind = iota
	// RangeBounded shows Len children starting at Min and never scrolls
	// past the point where the window would run off the end.
	RangeBounded
	// RangeCapped shows up to Len children starting at Min; Min may go as
	// far as the last child.
	RangeCapped
	// RangeStepped pages through the children Len at a time.
	RangeStepped
)

// Range windows or paginates a container's children. Only children inside
// the window are placed by the layout.
type Range struct {
	Kind RangeKind
	Min  int
	Len  int

	total    int
	resolved bool
}

// AllItems returns a range covering every child.
func AllItems() Range {
	return Range{Kind: RangeAll}
}

// Bounded returns a scrolling window of n children starting at start.
func Bounded(start, n int) Range {
	return Range{Kind: RangeBounded, Min: start, Len: n}
}

// Capped returns a window of up to n children starting at start.
func Capped(start, n int) Range {
	return Range{Kind: RangeCapped, Min: start, Len: n}
}

// Stepped returns a page of n children; start is snapped to a page start.
func Stepped(start, n int) Range {
	return Range{Kind: RangeStepped, Min: start, Len: n}
}

// Resolve clamps Min against the current child count. Layouts call it
// before reading the window.
func (r *Range) Resolve(total int) {
	if total < 0 {
		total = 0
	}
	r.total = total
	r.resolved = true
	r.Min = r.clampMin(r.Min)
}

func (r *Range) clampMin(m int) int {
	if m < 0 || r.Kind == RangeAll {
		return 0
	}
	n := max(r.Len, 0)
	if !r.resolved {
		return m
	}
	switch r.Kind {
	case RangeBounded:
		return min(m, max(r.total-n, 0))
	case RangeCapped:
		return min(m, max(r.total-1, 0))
	case RangeStepped:
		if n == 0 {
			return 0
		}
		last := 0
		if r.total > 0 {
			last = (r.total - 1) / n * n
		}
		return min(m/n*n, last)
	}
	return m
}

// Window returns the half-open index range [start, end) of visible children.
func (r Range) Window(total int) (start, end int) {
	if r.Kind == RangeAll {
		return 0, total
	}
	start = min(max(r.Min, 0), total)
	end = min(start+max(r.Len, 0), total)
	return start, end
}

// Total returns the child count seen by the last Resolve.
func (r Range) Total() int {
	return r.total
}

func (r Range) step() int {
	if r.Kind == RangeStepped {
		return max(r.Len, 1)
	}
	return 1
}

// Increment scrolls forward by one child, or one page for RangeStepped.
// It never moves past the limits established by the last Resolve.
func (r *Range) Increment() {
	if r.Kind == RangeAll {
		return
	}
	r.Min = r.clampMin(r.Min + r.step())
}

// Decrement scrolls backward by one child, or one page for RangeStepped.
func (r *Range) Decrement() {
	if r.Kind == RangeAll {
		return
	}
	r.Min = r.clampMin(r.Min - r.step())
}

// maxMin is the largest Min allowed for the last resolved total.
func (r Range) maxMin() int {
	n := max(r.Len, 0)
	switch r.Kind {
	case RangeBounded:
		return max(r.total-n, 0)
	case RangeCapped:
		return max(r.total-1, 0)
	case RangeStepped:
		if n == 0 || r.total == 0 {
			return 0
		}
		return (r.total - 1) / n * n
	}
	return 0
}

// Fraction returns scroll progress in [0, 1]. Ranges that cannot scroll
// report 0.
func (r Range) Fraction() float64 {
	hi := r.maxMin()
	if hi <= 0 {
		return 0
	}
	return clamp(float64(r.Min)/float64(hi), 0, 1)
}

// SetFraction scrolls to progress f in [0, 1].
func (r *Range) SetFraction(f float64) {
	if r.Kind == RangeAll {
		return
	}
	f = clamp(finite(f), 0, 1)
	hi := r.maxMin()
	if r.Kind == RangeStepped && r.Len > 0 {
		page := int(math.Round(f * float64(hi/r.Len)))
		r.Min = r.clampMin(page * r.Len)
		return
	}
	r.Min = r.clampMin(int(math.Round(f * float64(hi))))
}

// Page returns the zero-based index of the page containing Min.
func (r Range) Page() int {
	if r.Len <= 0 {
		return 0
	}
	return r.Min / r.Len
}

// Pages returns the number of pages for the last resolved total.
// It is always at least 1.
func (r Range) Pages() int {
	if r.Kind == RangeAll || r.Len <= 0 {
		return 1
	}
	return max((r.total+r.Len-1)/r.Len, 1)
}
