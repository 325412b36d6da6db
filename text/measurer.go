package text

import (
	"strings"

	"github.com/gogpu/layout"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is the font size in pixels used when a label has neither an
// explicit size nor a resolved em from a previous pass.
const DefaultSize = 16

// Measurer reports the pixel size of a string at a font size.
//
// Width is the widest line; height is the line height times the number of
// lines, where lines are separated by '\n'. An empty string measures as
// one empty line. Implementations must be safe for concurrent use.
type Measurer interface {
	Measure(s string, size float64) layout.Vec2
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(s string, size float64) layout.Vec2

// Measure implements Measurer.
func (f MeasurerFunc) Measure(s string, size float64) layout.Vec2 {
	return f(s, size)
}

// measureLines applies a single-line width function to every line of s.
func measureLines(s string, lineHeight float64, width func(line string) float64) layout.Vec2 {
	lines := strings.Split(s, "\n")
	w := 0.0
	for _, line := range lines {
		w = max(w, width(line))
	}
	return layout.Vec2{X: w, Y: lineHeight * float64(len(lines))}.Finite()
}

// fixedToFloat64 converts a 26.6 fixed-point value to float64.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
