package layout

import (
	"math"
	"testing"
)

const geomEpsilon = 1e-9

func TestRectFromBounds(t *testing.T) {
	r := RectFromBounds(V2(10, 20), V2(100, 50))
	if c := r.Center(); !c.Approx(V2(60, 45), geomEpsilon) {
		t.Errorf("Center() = %v, want (60, 45)", c)
	}
	if s := r.Size(); !s.Approx(V2(100, 50), geomEpsilon) {
		t.Errorf("Size() = %v, want (100, 50)", s)
	}
	lo, hi := r.AABB()
	if !lo.Approx(V2(10, 20), geomEpsilon) || !hi.Approx(V2(110, 70), geomEpsilon) {
		t.Errorf("AABB() = %v, %v", lo, hi)
	}
	c := r.Corners()
	if !c[0].Approx(V2(10, 20), geomEpsilon) || !c[2].Approx(V2(110, 70), geomEpsilon) {
		t.Errorf("Corners() = %v", c)
	}
}

func TestConstructRect_AnchorLandsOnParentAnchor(t *testing.T) {
	parent := parentFrame{rect: RectFromBounds(Vec2{}, V2(200, 100))}

	tests := []struct {
		name   string
		anchor Anchor
		parent OptAnchor
		offset Vec2
		rot    float64
		scale  Vec2
	}{
		{"centre", Center, Inherit(), Vec2{}, 0, Splat(1)},
		{"top-left", TopLeft, Inherit(), Vec2{}, 0, Splat(1)},
		{"bottom-right to top-left", BottomRight, Some(TopLeft), V2(5, 5), 0, Splat(1)},
		{"rotated", TopRight, Some(Center), V2(-3, 7), 0.7, Splat(1)},
		{"scaled and rotated", CenterLeft, Some(BottomCenter), Vec2{}, -1.2, V2(2, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform(tt.anchor)
			tr.ParentAnchor = tt.parent
			tr.Rotation = tt.rot
			tr.Scale = tt.scale

			rect, ok := constructRect(parent, tr, tt.offset, V2(40, 30), DefaultZBias)
			if !ok {
				t.Fatal("constructRect reported non-finite geometry")
			}
			want := parent.rect.Anchor(tr.ResolvedParentAnchor()).Add(tt.offset)
			if got := rect.Anchor(tt.anchor); !got.Approx(want, geomEpsilon) {
				t.Errorf("own anchor at %v, want %v", got, want)
			}
			if !rect.Size().Approx(V2(40, 30).MulVec(tt.scale), geomEpsilon) {
				t.Errorf("Size() = %v", rect.Size())
			}
		})
	}
}

func TestConstructRect_CenterPivot(t *testing.T) {
	parent := parentFrame{rect: RectFromBounds(Vec2{}, V2(100, 100))}
	tr := NewTransform(TopLeft)
	tr.Center = Some(Center)
	tr.Rotation = math.Pi / 2

	// Rotating about the centre keeps the centre where the unrotated
	// rectangle had it.
	rect, _ := constructRect(parent, tr, Vec2{}, V2(20, 10), DefaultZBias)
	if c := rect.Center(); !c.Approx(V2(10, 5), geomEpsilon) {
		t.Errorf("Center() = %v, want (10, 5)", c)
	}
	if got := rect.Anchor(TopLeft); !got.Approx(V2(15, -5), geomEpsilon) {
		t.Errorf("TopLeft corner = %v, want (15, -5)", got)
	}
}

func TestConstructRect_FixedPoint(t *testing.T) {
	parentRect := RectFromBounds(Vec2{}, V2(100, 100))
	parentRect.Rotation = 0.3
	parent := parentFrame{rect: parentRect, point: V2(7, 9), fixed: true}

	tr := NewTransform(BottomLeft)
	rect, _ := constructRect(parent, tr, Vec2{}, V2(10, 10), DefaultZBias)
	if got := rect.Anchor(BottomLeft); !got.Approx(V2(7, 9), geomEpsilon) {
		t.Errorf("anchor = %v, want the fixed point (7, 9)", got)
	}
	if rect.Rotation != 0.3 {
		t.Errorf("Rotation = %v, want the inherited 0.3", rect.Rotation)
	}
}

func TestConstructRect_ZAndAccumulation(t *testing.T) {
	parentRect := RectFromBounds(Vec2{}, V2(10, 10))
	parentRect.Z = 2
	parentRect.Scale = V2(2, 3)
	parentRect.Rotation = 0.5

	tr := NewTransform(Center)
	tr.Z = 1
	tr.Rotation = 0.25
	tr.Scale = V2(0.5, 2)
	rect, _ := constructRect(parentFrame{rect: parentRect}, tr, Vec2{}, V2(4, 4), DefaultZBias)

	if want := 3 + DefaultZBias; rect.Z != want {
		t.Errorf("Z = %v, want %v", rect.Z, want)
	}
	if rect.Rotation != 0.75 {
		t.Errorf("Rotation = %v, want 0.75", rect.Rotation)
	}
	if rect.Scale != V2(1, 6) {
		t.Errorf("Scale = %v, want (1, 6)", rect.Scale)
	}
}

func TestConstructRect_NonFinite(t *testing.T) {
	parent := parentFrame{rect: RectFromBounds(Vec2{}, V2(10, 10))}
	tr := NewTransform(Center)
	tr.Rotation = math.NaN()

	rect, ok := constructRect(parent, tr, Vec2{}, V2(5, 5), DefaultZBias)
	if ok {
		t.Error("constructRect reported NaN rotation as finite")
	}
	if !rect.Affine.IsFinite() {
		t.Errorf("Affine = %+v still contains non-finite values", rect.Affine)
	}
	if rect.Rotation != 0 {
		t.Errorf("Rotation = %v, want 0", rect.Rotation)
	}
}

func TestRotatedRect_Local(t *testing.T) {
	r := RectFromBounds(Vec2{}, V2(100, 100))
	r.Rotation = math.Pi / 2
	r.Scale = Splat(2)
	if got := r.Local(V2(10, 0)); !got.Approx(V2(50, 70), geomEpsilon) {
		t.Errorf("Local = %v, want (50, 70)", got)
	}
}

func TestRotatedRect_Contains(t *testing.T) {
	// 100x20 rotated a quarter turn: 20 wide and 100 tall around (50, 50).
	r := RotatedRect{
		Affine:   ScaleRotateTranslate(V2(100, 20), math.Pi/2, V2(50, 50)),
		Rotation: math.Pi / 2,
		Scale:    Splat(1),
	}
	tests := []struct {
		p    Vec2
		want bool
	}{
		{V2(50, 50), true},
		{V2(50, 95), true},
		{V2(59, 50), true},
		{V2(60, 100), true},
		{V2(61, 50), false},
		{V2(50, 101), false},
		{V2(90, 50), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	flat := RectFromBounds(V2(10, 10), V2(0, 30))
	if flat.Contains(V2(10, 20)) {
		t.Error("rect with no area contains a point")
	}
}
