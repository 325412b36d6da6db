package layout

// Transform2D is the local placement of a node relative to its parent.
//
// The node's Anchor point is pinned to the parent's ParentAnchor point,
// displaced by Offset. Rotation and Scale pivot around Center.
// ParentAnchor and Center inherit Anchor unless set.
//
// The zero value has zero Scale, which collapses the node to a point.
// Build transforms with NewTransform.
type Transform2D struct {
	Anchor       Anchor
	ParentAnchor OptAnchor
	Center       OptAnchor
	Offset       Size2
	Rotation     float64
	Scale        Vec2
	Z            float64
}

// NewTransform returns a transform anchored at a with unit scale.
func NewTransform(a Anchor) Transform2D {
	return Transform2D{Anchor: a, Scale: Splat(1)}
}

// ResolvedParentAnchor returns ParentAnchor, defaulting to Anchor.
func (t Transform2D) ResolvedParentAnchor() Anchor {
	return t.ParentAnchor.Or(t.Anchor)
}

// ResolvedCenter returns Center, defaulting to Anchor.
func (t Transform2D) ResolvedCenter() Anchor {
	return t.Center.Or(t.Anchor)
}

// Opacity holds the local opacity of a node. The zero value is fully
// transparent. The composed value is written to Result.Opacity by the
// solver.
type Opacity struct {
	Local float64
}

// Compose multiplies the local opacity with the parent's composed opacity.
func (o Opacity) Compose(parent float64) float64 {
	return clamp(finite(o.Local*parent), 0, 1)
}
