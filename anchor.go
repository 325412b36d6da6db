package layout

import "fmt"

// Anchor is a fractional position inside a rectangle.
// Both components lie in [-0.5, 0.5]; (0, 0) is the centre,
// (-0.5, -0.5) the top-left corner and (0.5, 0.5) the bottom-right corner.
type Anchor struct {
	X, Y float64
}

// Anchor presets.
var (
	TopLeft      = Anchor{-0.5, -0.5}
	TopCenter    = Anchor{0, -0.5}
	TopRight     = Anchor{0.5, -0.5}
	CenterLeft   = Anchor{-0.5, 0}
	Center       = Anchor{0, 0}
	CenterRight  = Anchor{0.5, 0}
	BottomLeft   = Anchor{-0.5, 0.5}
	BottomCenter = Anchor{0, 0.5}
	BottomRight  = Anchor{0.5, 0.5}
)

// NewAnchor returns an anchor with both components clamped to [-0.5, 0.5].
func NewAnchor(x, y float64) Anchor {
	return Anchor{X: clamp(finite(x), -0.5, 0.5), Y: clamp(finite(y), -0.5, 0.5)}
}

// Vec returns the anchor as a vector.
func (a Anchor) Vec() Vec2 {
	return Vec2(a)
}

// Of returns the pixel offset of the anchor from the centre of a rectangle
// with the given size.
func (a Anchor) Of(size Vec2) Vec2 {
	return Vec2{X: a.X * size.X, Y: a.Y * size.Y}
}

// String implements fmt.Stringer.
func (a Anchor) String() string {
	for name, p := range anchorNames {
		if p == a {
			return name
		}
	}
	return fmt.Sprintf("Anchor(%g, %g)", a.X, a.Y)
}

var anchorNames = map[string]Anchor{
	"TopLeft":      TopLeft,
	"TopCenter":    TopCenter,
	"TopRight":     TopRight,
	"CenterLeft":   CenterLeft,
	"Center":       Center,
	"CenterRight":  CenterRight,
	"BottomLeft":   BottomLeft,
	"BottomCenter": BottomCenter,
	"BottomRight":  BottomRight,
}

// ParseAnchor looks up a preset by name ("TopLeft", "Center", ...).
// Names are matched case-sensitively.
func ParseAnchor(name string) (Anchor, bool) {
	a, ok := anchorNames[name]
	return a, ok
}

// OptAnchor is an anchor that may inherit the value of another field.
// The zero value inherits.
type OptAnchor struct {
	anchor Anchor
	set    bool
}

// Inherit returns an OptAnchor that resolves to whatever fallback it is given.
func Inherit() OptAnchor {
	return OptAnchor{}
}

// Some returns an OptAnchor holding a.
func Some(a Anchor) OptAnchor {
	return OptAnchor{anchor: a, set: true}
}

// IsInherit reports whether the value defers to a fallback.
func (o OptAnchor) IsInherit() bool {
	return !o.set
}

// Or returns the held anchor, or fallback when o inherits.
func (o OptAnchor) Or(fallback Anchor) Anchor {
	if o.set {
		return o.anchor
	}
	return fallback
}

// String implements fmt.Stringer.
func (o OptAnchor) String() string {
	if !o.set {
		return "Inherit"
	}
	return o.anchor.String()
}

// class is the sign of an anchor component: where an item wants to sit
// along an axis.
type class int8

const (
	classNeg class = -1
	classMid class = 0
	classPos class = 1
)

func classify(v float64) class {
	switch {
	case v < 0:
		return classNeg
	case v > 0:
		return classPos
	default:
		return classMid
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
