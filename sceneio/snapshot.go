package sceneio

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/scene"
	"gopkg.in/yaml.v3"
)

// NodeResult is the solved geometry of one node in document terms.
type NodeResult struct {
	Name     string     `yaml:"name"`
	Depth    int        `yaml:"depth"`
	Center   [2]float64 `yaml:"center,flow"`
	Size     [2]float64 `yaml:"size,flow"`
	Rotation float64    `yaml:"rotation"`
	Z        float64    `yaml:"z"`
	Opacity  float64    `yaml:"opacity"`
	Visible  bool       `yaml:"visible"`
}

// Snapshot returns the result of the last pass for every node in
// breadth-first order. Unnamed nodes are reported by ID. Rotation is in
// degrees.
func Snapshot(g *scene.Graph) []NodeResult {
	out := make([]NodeResult, 0, g.Len())
	g.Walk(func(id layout.NodeID, depth int) bool {
		n := g.Node(id)
		name := g.Name(id)
		if name == "" {
			name = id.String()
		}
		c := n.Result.Rect.Center()
		size := n.Result.Rect.Size()
		out = append(out, NodeResult{
			Name:     name,
			Depth:    depth,
			Center:   [2]float64{round(c.X), round(c.Y)},
			Size:     [2]float64{round(size.X), round(size.Y)},
			Rotation: round(n.Result.Rect.Rotation * 180 / math.Pi),
			Z:        n.Result.Rect.Z,
			Opacity:  round(n.Result.Opacity),
			Visible:  n.Result.Visible,
		})
		return true
	})
	return out
}

// round trims float noise for display.
func round(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}

// WriteText writes results as an indented table.
func WriteText(w io.Writer, results []NodeResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tCENTER\tSIZE\tROTATION\tZ\tOPACITY\tVISIBLE")
	for _, r := range results {
		fmt.Fprintf(tw, "%*s%s\t(%g, %g)\t%gx%g\t%g\t%g\t%g\t%t\n",
			2*r.Depth, "", r.Name,
			r.Center[0], r.Center[1], r.Size[0], r.Size[1],
			r.Rotation, r.Z, r.Opacity, r.Visible)
	}
	return tw.Flush()
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []NodeResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("sceneio: failed to encode results: %w", err)
	}
	return enc.Close()
}
