package layout

import (
	"math"
	"testing"
)

func TestParseAnchor(t *testing.T) {
	for name, want := range anchorNames {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseAnchor(name)
			if !ok || got != want {
				t.Errorf("ParseAnchor(%q) = %v, %v; want %v, true", name, got, ok, want)
			}
			if got.String() != name {
				t.Errorf("String() = %q, want %q", got.String(), name)
			}
		})
	}
	if _, ok := ParseAnchor("center"); ok {
		t.Error("ParseAnchor is case-sensitive")
	}
}

func TestNewAnchor_Clamps(t *testing.T) {
	tests := []struct {
		x, y float64
		want Anchor
	}{
		{0.2, -0.1, Anchor{0.2, -0.1}},
		{2, -3, TopRight},
		{math.NaN(), math.Inf(1), Center},
	}
	for _, tt := range tests {
		if got := NewAnchor(tt.x, tt.y); got != tt.want {
			t.Errorf("NewAnchor(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAnchor_Of(t *testing.T) {
	size := V2(100, 40)
	if got := TopLeft.Of(size); got != V2(-50, -20) {
		t.Errorf("TopLeft.Of = %v", got)
	}
	if got := Center.Of(size); got != V2(0, 0) {
		t.Errorf("Center.Of = %v", got)
	}
	if got := BottomCenter.Of(size); got != V2(0, 20) {
		t.Errorf("BottomCenter.Of = %v", got)
	}
}

func TestOptAnchor(t *testing.T) {
	var zero OptAnchor
	if !zero.IsInherit() {
		t.Error("zero OptAnchor should inherit")
	}
	if got := Inherit().Or(TopRight); got != TopRight {
		t.Errorf("Inherit().Or = %v, want TopRight", got)
	}
	if got := Some(Center).Or(TopRight); got != Center {
		t.Errorf("Some(Center).Or = %v, want Center", got)
	}
	if Some(Center).IsInherit() {
		t.Error("Some reported IsInherit")
	}
	if s := Inherit().String(); s != "Inherit" {
		t.Errorf("Inherit().String() = %q", s)
	}

	tr := NewTransform(BottomLeft)
	if tr.ResolvedParentAnchor() != BottomLeft || tr.ResolvedCenter() != BottomLeft {
		t.Error("unset ParentAnchor and Center should follow Anchor")
	}
	tr.ParentAnchor = Some(TopRight)
	if tr.ResolvedParentAnchor() != TopRight {
		t.Errorf("ResolvedParentAnchor() = %v, want TopRight", tr.ResolvedParentAnchor())
	}
}

func TestParseControlAndDirection(t *testing.T) {
	for c := ControlNone; c <= WhiteSpace; c++ {
		got, ok := ParseControl(c.String())
		if !ok || got != c {
			t.Errorf("ParseControl(%q) = %v, %v", c.String(), got, ok)
		}
	}
	for d := LeftToRight; d <= BottomToTop; d++ {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	for a := AlignStart; a <= AlignEnd; a++ {
		got, ok := ParseAlignment(a.String())
		if !ok || got != a {
			t.Errorf("ParseAlignment(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("Sideways"); ok {
		t.Error("ParseDirection accepted an unknown name")
	}
}

func TestStackFor(t *testing.T) {
	tests := []struct {
		main, stack, want Direction
	}{
		{LeftToRight, TopToBottom, TopToBottom},
		{LeftToRight, BottomToTop, BottomToTop},
		{LeftToRight, LeftToRight, TopToBottom},
		{RightToLeft, LeftToRight, TopToBottom},
		{TopToBottom, RightToLeft, RightToLeft},
		{TopToBottom, LeftToRight, LeftToRight},
		{BottomToTop, TopToBottom, LeftToRight},
	}
	for _, tt := range tests {
		if got := stackFor(tt.main, tt.stack); got != tt.want {
			t.Errorf("stackFor(%v, %v) = %v, want %v", tt.main, tt.stack, got, tt.want)
		}
	}
}
