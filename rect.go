package layout

import "math"

// DefaultZBias is added to every node's depth on top of its parent's so that
// children always sort above their parent, even with equal nominal z.
const DefaultZBias = 1.0 / 1024

// RotatedRect is the resolved world-space rectangle of a node.
//
// Affine maps the unit square [-0.5, 0.5]² onto the rectangle: its linear
// part is scale(dimension*Scale) followed by rotate(Rotation), its
// translation is the rectangle's centre. Rotation and Scale are the
// absolute values accumulated down the tree.
type RotatedRect struct {
	Affine   Matrix
	Rotation float64
	Scale    Vec2
	Z        float64
}

// RectFromBounds returns an axis-aligned rectangle with its top-left
// corner at origin. It is typically used as the root rectangle of a pass.
func RectFromBounds(origin, size Vec2) RotatedRect {
	return RotatedRect{
		Affine:   ScaleRotateTranslate(size, 0, origin.Add(size.Mul(0.5))),
		Rotation: 0,
		Scale:    Splat(1),
	}
}

// Anchor returns the world position of anchor a on the rectangle.
func (r RotatedRect) Anchor(a Anchor) Vec2 {
	return r.Affine.TransformPoint(a.Vec())
}

// Center returns the world position of the rectangle's centre.
func (r RotatedRect) Center() Vec2 {
	return r.Affine.Translation()
}

// Size returns the on-screen size of the rectangle (dimension times scale).
func (r RotatedRect) Size() Vec2 {
	return Vec2{
		X: r.Affine.TransformVector(Vec2{X: 1}).Length(),
		Y: r.Affine.TransformVector(Vec2{Y: 1}).Length(),
	}
}

// Contains reports whether the world point p lies inside the rectangle,
// edges included. A rectangle with no area contains nothing.
func (r RotatedRect) Contains(p Vec2) bool {
	m := r.Affine
	if math.Abs(m.A*m.E-m.B*m.D) < 1e-10 {
		return false
	}
	u := m.Invert().TransformPoint(p)
	const eps = 1e-9
	return math.Abs(u.X) <= 0.5+eps && math.Abs(u.Y) <= 0.5+eps
}

// Corners returns the four corners in the order top-left, top-right,
// bottom-right, bottom-left.
func (r RotatedRect) Corners() [4]Vec2 {
	return [4]Vec2{
		r.Anchor(TopLeft),
		r.Anchor(TopRight),
		r.Anchor(BottomRight),
		r.Anchor(BottomLeft),
	}
}

// AABB returns the axis-aligned bounding box as (min, max).
func (r RotatedRect) AABB() (lo, hi Vec2) {
	c := r.Corners()
	lo, hi = c[0], c[0]
	for _, p := range c[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// Local maps a point from the parent frame of a container into world space.
// p is measured from the rectangle's centre in unscaled, unrotated pixels,
// which is the frame layouts place their children in.
func (r RotatedRect) Local(p Vec2) Vec2 {
	return r.Center().Add(p.MulVec(r.Scale).Rotate(r.Rotation))
}

// parentFrame is the part of the parent context that geometry needs.
// When fixed is set, point is a pre-resolved world anchor point assigned
// by a container layout and the parent's affine is not consulted.
type parentFrame struct {
	rect  RotatedRect
	point Vec2
	fixed bool
}

// constructRect resolves a node's rectangle against its parent frame.
// offset and dimension are already in pixels. The second result is false
// when a non-finite affine had to be replaced by zeros.
func constructRect(parent parentFrame, t Transform2D, offset, dimension Vec2, zBias float64) (RotatedRect, bool) {
	anchor := t.Anchor
	center := t.ResolvedCenter()

	var origin Vec2
	if parent.fixed {
		origin = parent.point
	} else {
		origin = parent.rect.Anchor(t.ResolvedParentAnchor())
	}

	// Vector from the anchor point to the pivot, in the node's unrotated frame.
	selfCenter := offset.Add(center.Vec().Sub(anchor.Vec()).MulVec(dimension))
	// Vector from the pivot to the rectangle's centre.
	dir := Center.Vec().Sub(center.Vec()).MulVec(dimension)

	outCenter := origin.Add(selfCenter.MulVec(parent.rect.Scale).Rotate(parent.rect.Rotation))

	rotation := parent.rect.Rotation + t.Rotation
	scale := parent.rect.Scale.MulVec(t.Scale)

	outOrigin := outCenter.Add(dir.MulVec(scale).Rotate(rotation))

	rect := RotatedRect{
		Affine:   ScaleRotateTranslate(dimension.MulVec(scale), rotation, outOrigin),
		Rotation: finite(rotation),
		Scale:    scale.Finite(),
		Z:        finite(parent.rect.Z + t.Z + zBias),
	}
	if !rect.Affine.IsFinite() {
		rect.Affine = sanitize(rect.Affine)
		return rect, false
	}
	return rect, true
}

func sanitize(m Matrix) Matrix {
	return Matrix{
		A: finite(m.A), B: finite(m.B), C: finite(m.C),
		D: finite(m.D), E: finite(m.E), F: finite(m.F),
	}
}
