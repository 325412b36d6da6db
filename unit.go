package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a raw size value is interpreted.
type Unit uint8

const (
	UnitPixels        Unit = iota // Absolute pixels
	UnitEm                        // Multiples of the node's em
	UnitRem                       // Multiples of the root em
	UnitPercent                   // Fraction of the parent size (1 = 100%)
	UnitMarginPixels              // Parent size minus pixels
	UnitMarginEm                  // Parent size minus ems
	UnitMarginRem                 // Parent size minus rems
	UnitMarginPercent             // Parent size minus a fraction of itself
)

// String returns the suffix used when formatting values of this unit.
func (u Unit) String() string {
	switch u {
	case UnitPixels:
		return "px"
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	case UnitPercent:
		return "%"
	case UnitMarginPixels:
		return "100%-px"
	case UnitMarginEm:
		return "100%-em"
	case UnitMarginRem:
		return "100%-rem"
	case UnitMarginPercent:
		return "100%-%"
	default:
		return "unknown"
	}
}

// Length is a single-axis size value tagged with its unit.
type Length struct {
	Unit  Unit
	Value float64
}

// Px returns a length in pixels.
func Px(v float64) Length { return Length{Unit: UnitPixels, Value: v} }

// Em returns a length in ems.
func Em(v float64) Length { return Length{Unit: UnitEm, Value: v} }

// Rem returns a length in root ems.
func Rem(v float64) Length { return Length{Unit: UnitRem, Value: v} }

// Percent returns a length as a fraction of the parent (0.5 = 50%).
func Percent(v float64) Length { return Length{Unit: UnitPercent, Value: v} }

// Resolve converts the length to pixels given the parent length along the
// same axis, the current em and the root em.
func (l Length) Resolve(parent, em, rem float64) float64 {
	var px float64
	switch l.Unit {
	case UnitPixels:
		px = l.Value
	case UnitEm:
		px = l.Value * em
	case UnitRem:
		px = l.Value * rem
	case UnitPercent:
		px = l.Value * parent
	case UnitMarginPixels:
		px = parent - l.Value
	case UnitMarginEm:
		px = parent - l.Value*em
	case UnitMarginRem:
		px = parent - l.Value*rem
	case UnitMarginPercent:
		px = parent - l.Value*parent
	}
	return finite(px)
}

// String formats the length in the syntax accepted by ParseLength.
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'g', -1, 64)
	switch l.Unit {
	case UnitPercent:
		return strconv.FormatFloat(l.Value*100, 'g', -1, 64) + "%"
	case UnitMarginPixels:
		return "100%-" + v + "px"
	case UnitMarginEm:
		return "100%-" + v + "em"
	case UnitMarginRem:
		return "100%-" + v + "rem"
	case UnitMarginPercent:
		return "100%-" + strconv.FormatFloat(l.Value*100, 'g', -1, 64) + "%"
	default:
		return v + l.Unit.String()
	}
}

// ParseLength parses "12px", "1.5em", "2rem", "50%", or the margin forms
// "100%-12px", "100%-1em", "100%-2rem", "100%-10%". A bare number is pixels.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	margin := false
	if rest, ok := strings.CutPrefix(s, "100%-"); ok {
		margin = true
		s = strings.TrimSpace(rest)
	}

	var unit Unit
	var num string
	switch {
	case strings.HasSuffix(s, "rem"):
		unit, num = UnitRem, strings.TrimSuffix(s, "rem")
	case strings.HasSuffix(s, "em"):
		unit, num = UnitEm, strings.TrimSuffix(s, "em")
	case strings.HasSuffix(s, "px"):
		unit, num = UnitPixels, strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		unit, num = UnitPercent, strings.TrimSuffix(s, "%")
	default:
		unit, num = UnitPixels, s
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("layout: invalid length %q: %w", s, err)
	}
	if unit == UnitPercent {
		v /= 100
	}
	if margin {
		unit += UnitMarginPixels
	}
	return Length{Unit: unit, Value: v}, nil
}

// Size2 is a two-axis size specification. Each axis carries its own unit.
type Size2 struct {
	X, Y Length
}

// Pixels returns a Size2 in pixels on both axes.
func Pixels(x, y float64) Size2 { return Size2{X: Px(x), Y: Px(y)} }

// Ems returns a Size2 in ems on both axes.
func Ems(x, y float64) Size2 { return Size2{X: Em(x), Y: Em(y)} }

// Rems returns a Size2 in root ems on both axes.
func Rems(x, y float64) Size2 { return Size2{X: Rem(x), Y: Rem(y)} }

// Percents returns a Size2 as fractions of the parent size on both axes.
func Percents(x, y float64) Size2 { return Size2{X: Percent(x), Y: Percent(y)} }

// Full is 100% of the parent on both axes.
func Full() Size2 { return Percents(1, 1) }

// Resolve converts the size to pixels. It is a pure function of its inputs.
func (s Size2) Resolve(parent Vec2, em, rem float64) Vec2 {
	return Vec2{
		X: s.X.Resolve(parent.X, em, rem),
		Y: s.Y.Resolve(parent.Y, em, rem),
	}
}

// IsZero reports whether both raw values are zero.
func (s Size2) IsZero() bool {
	return s.X.Value == 0 && s.Y.Value == 0
}
