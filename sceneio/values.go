package sceneio

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/layout"
	"gopkg.in/yaml.v3"
)

// ErrInvalidValue is returned for a scalar that does not parse as the
// expected kind of value.
var ErrInvalidValue = errors.New("sceneio: invalid value")

// Anchor is an anchor written as a preset name or an [x, y] pair.
type Anchor layout.Anchor

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Anchor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v, err := ParseAnchor(node.Value)
		if err != nil {
			return err
		}
		*a = Anchor(v)
		return nil
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("%w: anchor needs 2 components, got %d", ErrInvalidValue, len(xy))
		}
		*a = Anchor(layout.NewAnchor(xy[0], xy[1]))
		return nil
	default:
		return fmt.Errorf("%w: anchor at line %d", ErrInvalidValue, node.Line)
	}
}

// Pair is a vector written as a single number for both axes or an [x, y]
// pair.
type Pair layout.Vec2

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pair) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*p = Pair(layout.Splat(v))
		return nil
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("%w: pair needs 2 components, got %d", ErrInvalidValue, len(xy))
		}
		*p = Pair(layout.V2(xy[0], xy[1]))
		return nil
	default:
		return fmt.Errorf("%w: pair at line %d", ErrInvalidValue, node.Line)
	}
}

// ParseAnchor looks up an anchor preset by name.
func ParseAnchor(s string) (layout.Anchor, error) {
	a, ok := layout.ParseAnchor(strings.TrimSpace(s))
	if !ok {
		return layout.Anchor{}, fmt.Errorf("%w: anchor %q", ErrInvalidValue, s)
	}
	return a, nil
}

// ParseSize parses "W H" or a single length used for both axes.
func ParseSize(s string) (layout.Size2, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		l, err := layout.ParseLength(fields[0])
		if err != nil {
			return layout.Size2{}, err
		}
		return layout.Size2{X: l, Y: l}, nil
	case 2:
		x, err := layout.ParseLength(fields[0])
		if err != nil {
			return layout.Size2{}, err
		}
		y, err := layout.ParseLength(fields[1])
		if err != nil {
			return layout.Size2{}, err
		}
		return layout.Size2{X: x, Y: y}, nil
	default:
		return layout.Size2{}, fmt.Errorf("%w: size %q needs 1 or 2 lengths", ErrInvalidValue, s)
	}
}

var directionAliases = map[string]layout.Direction{
	"ltr": layout.LeftToRight,
	"rtl": layout.RightToLeft,
	"ttb": layout.TopToBottom,
	"btt": layout.BottomToTop,
}

// ParseDirection accepts direction names such as "LeftToRight" and the
// short forms ltr, rtl, ttb and btt.
func ParseDirection(s string) (layout.Direction, error) {
	s = strings.TrimSpace(s)
	if d, ok := layout.ParseDirection(s); ok {
		return d, nil
	}
	if d, ok := directionAliases[strings.ToLower(s)]; ok {
		return d, nil
	}
	return layout.LeftToRight, fmt.Errorf("sceneio: %q: %w", s, layout.ErrInvalidDirection)
}

// ParseAlignment accepts Start, Center and End in any case.
func ParseAlignment(s string) (layout.Alignment, error) {
	for a := layout.AlignStart; a <= layout.AlignEnd; a++ {
		if strings.EqualFold(a.String(), strings.TrimSpace(s)) {
			return a, nil
		}
	}
	return layout.AlignStart, fmt.Errorf("%w: alignment %q", ErrInvalidValue, s)
}

// ParseControl accepts control names in any case; "" is ControlNone.
func ParseControl(s string) (layout.Control, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return layout.ControlNone, nil
	}
	for c := layout.ControlNone; c <= layout.WhiteSpace; c++ {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return layout.ControlNone, fmt.Errorf("%w: control %q", ErrInvalidValue, s)
}

// ParseFontSize parses "inherit", "18px", "1.5em" or "2rem". A bare
// number is pixels; "" inherits.
func ParseFontSize(s string) (layout.FontSize, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "inherit") {
		return layout.FontSize{}, nil
	}
	l, err := layout.ParseLength(s)
	if err != nil {
		return layout.FontSize{}, err
	}
	switch l.Unit {
	case layout.UnitPixels:
		return layout.FontSize{Kind: layout.FontPixels, Value: l.Value}, nil
	case layout.UnitEm:
		return layout.FontSize{Kind: layout.FontEms, Value: l.Value}, nil
	case layout.UnitRem:
		return layout.FontSize{Kind: layout.FontRems, Value: l.Value}, nil
	default:
		return layout.FontSize{}, fmt.Errorf("%w: font size %q", ErrInvalidValue, s)
	}
}

// ParseRange converts a RangeSpec; nil shows every child.
func ParseRange(spec *RangeSpec) (layout.Range, error) {
	if spec == nil {
		return layout.AllItems(), nil
	}
	switch strings.ToLower(spec.Kind) {
	case "", "all":
		return layout.AllItems(), nil
	case "bounded":
		return layout.Bounded(spec.Min, spec.Len), nil
	case "capped":
		return layout.Capped(spec.Min, spec.Len), nil
	case "stepped":
		return layout.Stepped(spec.Min, spec.Len), nil
	default:
		return layout.Range{}, fmt.Errorf("%w: range kind %q", ErrInvalidValue, spec.Kind)
	}
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
