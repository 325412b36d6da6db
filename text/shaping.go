package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/layout"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/bidi"
)

// ShapingMeasurer measures strings with HarfBuzz shaping from
// go-text/typesetting, so ligatures and kerning affect the width.
// Each line is split into bidirectional runs first and every run is
// shaped in its own direction.
//
// ShapingMeasurer is safe for concurrent use: the parsed font is
// read-only, while faces and shapers are created or pooled per call.
type ShapingMeasurer struct {
	font     *font.Font
	language language.Language

	shapers sync.Pool
}

// NewShapingMeasurer parses TrueType or OpenType data.
func NewShapingMeasurer(data []byte) (*ShapingMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ShapingMeasurer{
		font:     face.Font,
		language: language.NewLanguage("en"),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// DefaultShapingMeasurer returns a ShapingMeasurer using the Go Regular font.
func DefaultShapingMeasurer() *ShapingMeasurer {
	m, err := NewShapingMeasurer(goregular.TTF)
	if err != nil {
		panic(err) // embedded font always parses
	}
	return m
}

// Measure implements Measurer.
func (m *ShapingMeasurer) Measure(s string, size float64) layout.Vec2 {
	if !(size > 0) {
		return layout.Vec2{}
	}
	face := font.NewFace(m.font)
	hb := m.shapers.Get().(*shaping.HarfbuzzShaper)
	defer m.shapers.Put(hb)

	// Line height does not depend on the text; shape a space to read it.
	probe := hb.Shape(m.input([]rune{' '}, di.DirectionLTR, face, size))
	bounds := probe.LineBounds
	lineHeight := fixedToFloat64(bounds.Ascent - bounds.Descent + bounds.Gap)

	return measureLines(s, lineHeight, func(line string) float64 {
		w := 0.0
		for _, r := range bidiRuns(line) {
			out := hb.Shape(m.input([]rune(r.text), r.dir, face, size))
			w += fixedToFloat64(out.Advance)
		}
		return w
	})
}

func (m *ShapingMeasurer) input(runes []rune, dir di.Direction, face *font.Face, size float64) shaping.Input {
	return shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  m.language,
	}
}

type run struct {
	text string
	dir  di.Direction
}

// bidiRuns splits a line into runs of uniform direction in logical order.
func bidiRuns(line string) []run {
	if line == "" {
		return nil
	}
	var p bidi.Paragraph
	if _, err := p.SetString(line, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []run{{text: line, dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []run{{text: line, dir: di.DirectionLTR}}
	}
	runs := make([]run, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		r := ordering.Run(i)
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{text: r.String(), dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
