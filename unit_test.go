package layout

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestLength_Resolve(t *testing.T) {
	const parent, em, rem = 200.0, 10.0, 16.0
	tests := []struct {
		l    Length
		want float64
	}{
		{Px(12), 12},
		{Em(1.5), 15},
		{Rem(2), 32},
		{Percent(0.25), 50},
		{Length{UnitMarginPixels, 20}, 180},
		{Length{UnitMarginEm, 2}, 180},
		{Length{UnitMarginRem, 1}, 184},
		{Length{UnitMarginPercent, 0.1}, 180},
		{Px(math.NaN()), 0},
		{Em(math.Inf(1)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.l.String(), func(t *testing.T) {
			if got := tt.l.Resolve(parent, em, rem); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"12px", Px(12)},
		{"12", Px(12)},
		{"1.5em", Em(1.5)},
		{"2rem", Rem(2)},
		{"50%", Percent(0.5)},
		{" 3px ", Px(3)},
		{"100%-10px", Length{UnitMarginPixels, 10}},
		{"100%-2em", Length{UnitMarginEm, 2}},
		{"100%-1rem", Length{UnitMarginRem, 1}},
		{"100%-10%", Length{UnitMarginPercent, 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if err != nil {
				t.Fatalf("ParseLength(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLength_Invalid(t *testing.T) {
	for _, in := range []string{"", "px", "abc", "12pt", "100%-"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseLength(in)
			if err == nil {
				t.Fatalf("ParseLength(%q) succeeded, want error", in)
			}
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) {
				t.Errorf("ParseLength(%q) error %v does not wrap a NumError", in, err)
			}
		})
	}
}

func TestLength_StringRoundTrip(t *testing.T) {
	for _, l := range []Length{
		Px(4), Em(0.5), Rem(3), Percent(0.75),
		{UnitMarginPixels, 8}, {UnitMarginEm, 1}, {UnitMarginPercent, 0.5},
	} {
		got, err := ParseLength(l.String())
		if err != nil {
			t.Fatalf("ParseLength(%q) error: %v", l.String(), err)
		}
		if got != l {
			t.Errorf("ParseLength(%q) = %+v, want %+v", l.String(), got, l)
		}
	}
}

func TestSize2_Resolve(t *testing.T) {
	s := Size2{X: Percent(0.5), Y: Em(2)}
	got := s.Resolve(V2(300, 100), 12, 16)
	if got != V2(150, 24) {
		t.Errorf("Resolve() = %v, want (150, 24)", got)
	}
	if !Pixels(0, 0).IsZero() || Pixels(1, 0).IsZero() {
		t.Error("IsZero mismatch")
	}
	if got := Rems(2, 0.5).Resolve(V2(300, 100), 10, 16); got != V2(32, 8) {
		t.Errorf("Rems Resolve() = %v, want (32, 8)", got)
	}
	if Full().Resolve(V2(30, 40), 0, 0) != V2(30, 40) {
		t.Error("Full() does not resolve to the parent size")
	}
}

func TestDimension_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		d        Dimension
		wantSize Vec2
		wantEm   float64
	}{
		{"owned pixels", OwnedDimension(Pixels(10, 20)), V2(10, 20), 8},
		{"owned percent", OwnedDimension(Percents(0.5, 1)), V2(50, 60), 8},
		{"inherit em", OwnedDimension(Ems(2, 1)), V2(16, 8), 8},
		{
			"own font size",
			Dimension{Size: Ems(2, 1), FontSize: FontSize{Kind: FontPixels, Value: 20}},
			V2(40, 20), 20,
		},
		{
			"ems of parent",
			Dimension{Size: Ems(1, 1), FontSize: FontSize{Kind: FontEms, Value: 1.5}},
			V2(12, 12), 12,
		},
		{
			"rems",
			Dimension{Size: Ems(1, 1), FontSize: FontSize{Kind: FontRems, Value: 2}},
			V2(32, 32), 32,
		},
		{
			"copied",
			Dimension{Source: Copied, Copied: V2(33, 11)},
			V2(33, 11), 8,
		},
		{
			"copied nan",
			Dimension{Source: Copied, Copied: V2(math.NaN(), 5)},
			V2(0, 5), 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, em := tt.d.Resolve(V2(100, 60), 8, 16)
			if size != tt.wantSize || em != tt.wantEm {
				t.Errorf("Resolve() = (%v, %v), want (%v, %v)", size, em, tt.wantSize, tt.wantEm)
			}
		})
	}
}
