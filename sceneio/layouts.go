package sceneio

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gogpu/layout"
	"github.com/mitchellh/mapstructure"
)

type boundsParams struct {
	FixedX bool         `mapstructure:"fixed_x"`
	FixedY bool         `mapstructure:"fixed_y"`
	Min    layout.Size2 `mapstructure:"min"`
	Max    layout.Size2 `mapstructure:"max"`
}

type lineParams struct {
	Direction layout.Direction `mapstructure:"direction"`
	Stretch   bool             `mapstructure:"stretch"`
}

type paragraphParams struct {
	Direction layout.Direction `mapstructure:"direction"`
	Stack     layout.Direction `mapstructure:"stack"`
	Alignment layout.Alignment `mapstructure:"alignment"`
	Stretch   bool             `mapstructure:"stretch"`
}

type gridParams struct {
	Row       layout.Direction `mapstructure:"row"`
	Column    layout.Direction `mapstructure:"column"`
	Columns   int              `mapstructure:"columns"`
	Cells     string           `mapstructure:"cells"`
	Cell      layout.Size2     `mapstructure:"cell"`
	Rows      int              `mapstructure:"rows"`
	Alignment layout.Alignment `mapstructure:"alignment"`
}

type tableParams struct {
	Row       layout.Direction `mapstructure:"row"`
	Column    layout.Direction `mapstructure:"column"`
	Widths    []layout.Length  `mapstructure:"widths"`
	Weights   []float64        `mapstructure:"weights"`
	Flex      int              `mapstructure:"flex"`
	Alignment layout.Alignment `mapstructure:"alignment"`
}

type sparseParams struct {
	Topology string        `mapstructure:"topology"`
	Cell     layout.Size2  `mapstructure:"cell"`
	Origin   layout.Anchor `mapstructure:"origin"`
}

var (
	directionType = reflect.TypeOf(layout.Direction(0))
	alignmentType = reflect.TypeOf(layout.Alignment(0))
	lengthType    = reflect.TypeOf(layout.Length{})
	size2Type     = reflect.TypeOf(layout.Size2{})
	anchorType    = reflect.TypeOf(layout.Anchor{})
)

// valueHook turns the strings and lists of a YAML layout map into layout
// values.
func valueHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Slice && to == anchorType {
		xy, ok := data.([]any)
		if !ok || len(xy) != 2 {
			return nil, fmt.Errorf("%w: anchor needs 2 components", ErrInvalidValue)
		}
		x, okx := number(xy[0])
		y, oky := number(xy[1])
		if !okx || !oky {
			return nil, fmt.Errorf("%w: anchor components must be numbers", ErrInvalidValue)
		}
		return layout.NewAnchor(x, y), nil
	}
	if from.Kind() != reflect.String {
		// Bare numbers are pixels.
		if v, ok := number(data); ok {
			switch to {
			case lengthType:
				return layout.Px(v), nil
			case size2Type:
				return layout.Pixels(v, v), nil
			}
		}
		return data, nil
	}

	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	switch to {
	case directionType:
		return ParseDirection(s)
	case alignmentType:
		return ParseAlignment(s)
	case lengthType:
		return layout.ParseLength(s)
	case size2Type:
		return ParseSize(s)
	case anchorType:
		return ParseAnchor(s)
	}
	return data, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// decodeParams decodes a layout map into out. mapstructure flattens field
// errors to strings, so the first hook error is returned as is to keep it
// matchable with errors.Is.
func decodeParams(params map[string]any, out any) error {
	var hookErr error
	hook := func(from, to reflect.Type, data any) (any, error) {
		v, err := valueHook(from, to, data)
		if err != nil && hookErr == nil {
			hookErr = err
		}
		return v, err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       hook,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		if hookErr != nil {
			return hookErr
		}
		return err
	}
	return nil
}

// DecodeLayout builds a layout from a map holding "kind" and the kind's
// parameters. Unknown parameters are rejected.
func DecodeLayout(spec map[string]any) (layout.Layout, error) {
	params := make(map[string]any, len(spec))
	for k, v := range spec {
		params[k] = v
	}
	kind, _ := params["kind"].(string)
	delete(params, "kind")

	l, err := decodeKind(strings.ToLower(kind), params)
	if err != nil {
		return nil, fmt.Errorf("sceneio: %s layout: %w", kind, err)
	}
	return l, nil
}

func decodeKind(kind string, params map[string]any) (layout.Layout, error) {
	switch kind {
	case "bounds":
		var p boundsParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return layout.Bounds{FixedX: p.FixedX, FixedY: p.FixedY, Min: p.Min, Max: p.Max}, nil

	case "stack":
		var p lineParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		if p.Stretch {
			return nil, fmt.Errorf("%w: stack does not stretch", ErrInvalidValue)
		}
		return layout.Stack{Direction: p.Direction}, nil

	case "span":
		var p lineParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return layout.Span{Direction: p.Direction, Stretch: p.Stretch}, nil

	case "paragraph":
		var p paragraphParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return layout.Paragraph{Direction: p.Direction, Stack: p.Stack, Alignment: p.Alignment, Stretch: p.Stretch}, nil

	case "grid":
		return decodeGrid(params)

	case "table":
		return decodeTable(params)

	case "sparse":
		var p sparseParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		topo, err := parseTopology(p.Topology)
		if err != nil {
			return nil, err
		}
		return layout.Sparse{Topology: topo, Cell: p.Cell, Origin: p.Origin}, nil

	case "":
		return nil, fmt.Errorf("%w: missing kind", ErrInvalidValue)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidValue, kind)
	}
}

func decodeGrid(params map[string]any) (layout.Layout, error) {
	var p gridParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	g, err := layout.NewGrid(p.Columns)
	if err != nil {
		return nil, err
	}
	// Zero directions select left-to-right rows stacked top to bottom.
	g.Row, g.Column, g.Alignment = p.Row, p.Column, p.Alignment
	switch strings.ToLower(p.Cells) {
	case "", "dynamic":
		g.Cells = layout.CellsDynamic
	case "fixed":
		g.Cells, g.Cell = layout.CellsFixed, p.Cell
	case "sized":
		g.Cells, g.Rows = layout.CellsSized, p.Rows
	default:
		return nil, fmt.Errorf("%w: grid cells %q", ErrInvalidValue, p.Cells)
	}
	return g, nil
}

func decodeTable(params map[string]any) (layout.Layout, error) {
	var p tableParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	var (
		t   layout.Table
		err error
	)
	switch {
	case len(p.Widths) > 0 && len(p.Weights) == 0 && p.Flex == 0:
		t, err = layout.NewFixedTable(p.Widths...)
	case len(p.Weights) > 0 && len(p.Widths) == 0 && p.Flex == 0:
		t, err = layout.NewProportionalTable(p.Weights...)
	case len(p.Widths) == 0 && len(p.Weights) == 0:
		t, err = layout.NewFlexTable(p.Flex)
	default:
		return nil, fmt.Errorf("%w: table takes one of widths, weights or flex", ErrInvalidValue)
	}
	if err != nil {
		return nil, err
	}
	t.Row, t.Column, t.Alignment = p.Row, p.Column, p.Alignment
	return t, nil
}

func parseTopology(s string) (layout.Topology, error) {
	for t := layout.Rectangular; t <= layout.Hexagonal; t++ {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	if s == "" {
		return layout.Rectangular, nil
	}
	return layout.Rectangular, fmt.Errorf("%w: topology %q", ErrInvalidValue, s)
}
