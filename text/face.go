package text

import (
	"fmt"
	"sync"

	"github.com/gogpu/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceMeasurer measures strings with golang.org/x/image opentype faces.
// Widths are the sum of glyph advances with kerning; no shaping is done.
//
// FaceMeasurer is safe for concurrent use. Faces are created lazily per
// size and are not safe for concurrent use, so measuring is serialised.
type FaceMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer parses TrueType or OpenType data.
func NewFaceMeasurer(data []byte) (*FaceMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &FaceMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// DefaultFaceMeasurer returns a FaceMeasurer using the Go Regular font.
func DefaultFaceMeasurer() *FaceMeasurer {
	m, err := NewFaceMeasurer(goregular.TTF)
	if err != nil {
		panic(err) // embedded font always parses
	}
	return m
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string, size float64) layout.Vec2 {
	if !(size > 0) {
		return layout.Vec2{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(size)
	if err != nil {
		layout.Logger().Warn("text: face creation failed", "size", size, "err", err)
		return layout.Vec2{}
	}
	lineHeight := fixedToFloat64(face.Metrics().Height)
	return measureLines(s, lineHeight, func(line string) float64 {
		return fixedToFloat64(font.MeasureString(face, line))
	})
}

// face returns the cached face for size; m.mu must be held.
func (m *FaceMeasurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// Close releases every cached face.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, f := range m.faces {
		_ = f.Close()
		delete(m.faces, size)
	}
	return nil
}
