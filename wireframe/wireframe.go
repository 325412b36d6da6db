// Package wireframe draws the result of a layout pass as rectangle
// outlines, for debugging layouts without a renderer.
//
// Rectangles are drawn back to front by Z, outlined in a colour chosen by
// tree depth. Nodes hidden by a range window are skipped unless
// Options.ShowHidden is set.
package wireframe

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sort"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/scene"
	"golang.org/x/image/vector"
)

// Options configures a Renderer.
type Options struct {
	// Width and Height are the image size in pixels.
	Width, Height int
	// Background fills the image before drawing; nil means white.
	Background color.Color
	// Stroke is the outline width in pixels; zero means 1.
	Stroke float64
	// Fill shades the inside of each rectangle with a translucent
	// version of its outline colour.
	Fill       bool
	ShowHidden bool
	// Palette colours outlines by depth, wrapping around; nil uses
	// DefaultPalette.
	Palette []color.RGBA
}

// DefaultPalette is used when Options.Palette is nil.
var DefaultPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// Renderer rasterizes rotated rectangles onto an RGBA image.
type Renderer struct {
	opts Options
	z    *vector.Rasterizer
}

// NewRenderer returns a renderer for images of the configured size.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("wireframe: invalid image size %dx%d", opts.Width, opts.Height)
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Stroke <= 0 {
		opts.Stroke = 1
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}
	return &Renderer{opts: opts, z: vector.NewRasterizer(opts.Width, opts.Height)}, nil
}

type shape struct {
	rect  layout.RotatedRect
	depth int
}

// Render draws every node of g from its last pass.
func (r *Renderer) Render(g *scene.Graph) *image.RGBA {
	var shapes []shape
	g.Walk(func(id layout.NodeID, depth int) bool {
		n := g.Node(id)
		if n.Result.Visible || r.opts.ShowHidden {
			shapes = append(shapes, shape{rect: n.Result.Rect, depth: depth})
		}
		return true
	})
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].rect.Z < shapes[j].rect.Z
	})

	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)
	for _, s := range shapes {
		r.DrawRect(img, s.rect, r.opts.Palette[s.depth%len(r.opts.Palette)])
	}
	layout.Logger().Debug("wireframe: rendered", "shapes", len(shapes))
	return img
}

// DrawRect outlines rect on dst in c, filling it first if Options.Fill is set.
func (r *Renderer) DrawRect(dst *image.RGBA, rect layout.RotatedRect, c color.RGBA) {
	size := rect.Size().Abs()
	if !size.IsFinite() || size.X == 0 || size.Y == 0 {
		return
	}
	outer := unitCorners(rect, 0.5, 0.5)

	if r.opts.Fill {
		r.z.Reset(r.opts.Width, r.opts.Height)
		r.polygon(outer, false)
		fill := color.RGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: 0x40}
		r.z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
	}

	// The ring is the outer polygon minus the inner one wound the other
	// way; a stroke wider than half the rect fills it.
	r.z.Reset(r.opts.Width, r.opts.Height)
	r.polygon(outer, false)
	ix := 0.5 - r.opts.Stroke/size.X
	iy := 0.5 - r.opts.Stroke/size.Y
	if ix > 0 && iy > 0 {
		r.polygon(unitCorners(rect, ix, iy), true)
	}
	r.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// unitCorners maps the corners of the box [-hx,hx]x[-hy,hy] in unit-square
// space through the rect's affine.
func unitCorners(rect layout.RotatedRect, hx, hy float64) [4]layout.Vec2 {
	m := rect.Affine
	return [4]layout.Vec2{
		m.TransformPoint(layout.V2(-hx, -hy)),
		m.TransformPoint(layout.V2(hx, -hy)),
		m.TransformPoint(layout.V2(hx, hy)),
		m.TransformPoint(layout.V2(-hx, hy)),
	}
}

func (r *Renderer) polygon(pts [4]layout.Vec2, reverse bool) {
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}

// Render draws g into a new image configured by opts.
func Render(g *scene.Graph, opts Options) (*image.RGBA, error) {
	r, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	return r.Render(g), nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("wireframe: failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}
	if err := WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
