package sceneio

import (
	"fmt"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/scene"
	"github.com/gogpu/layout/text"
)

// DefaultEm is the root em of a document that does not set one.
const DefaultEm = 16

// Scene is a document turned into a graph ready to solve.
type Scene struct {
	Graph *scene.Graph
	Root  layout.RootInfo
	// Labels holds the text of every node that has some.
	Labels map[layout.NodeID]text.Label
}

// Build converts the document into a scene graph.
func (d *Document) Build() (*Scene, error) {
	if !(d.Root.Width >= 0) || !(d.Root.Height >= 0) {
		return nil, fmt.Errorf("sceneio: %w: root size %gx%g", ErrInvalidValue, d.Root.Width, d.Root.Height)
	}
	em := d.Root.Em
	if em <= 0 {
		em = DefaultEm
	}
	root := layout.Viewport(layout.V2(d.Root.Width, d.Root.Height), em)
	if d.Root.Rem > 0 {
		root.Rem = d.Root.Rem
	}

	s := &Scene{Root: root, Labels: make(map[layout.NodeID]text.Label)}
	b := scene.NewBuilder()
	var buildErr error
	s.add(b, d.Nodes, "", &buildErr)
	if buildErr != nil {
		return nil, buildErr
	}
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("sceneio: %w", err)
	}
	s.Graph = g
	layout.Logger().Debug("sceneio: scene built", "nodes", g.Len(), "labels", len(s.Labels))
	return s, nil
}

// add appends specs under the builder's current parent. path names the
// position of the specs in the document for error messages.
func (s *Scene) add(b *scene.Builder, specs []NodeSpec, path string, errp *error) {
	for i := range specs {
		if *errp != nil || b.Err() != nil {
			return
		}
		spec := &specs[i]
		where := fmt.Sprintf("%s/%d", path, i)
		if spec.Name != "" {
			where = path + "/" + spec.Name
		}

		n, err := spec.node()
		if err != nil {
			*errp = fmt.Errorf("sceneio: node %s: %w", where, err)
			return
		}
		b.Add(spec.Name, n)
		id, ok := b.Last()
		if !ok {
			return
		}
		if spec.Text != "" {
			s.Labels[id] = text.Label{Text: spec.Text, Size: spec.TextSize}
		}
		if len(spec.Children) > 0 {
			b.Children(func(cb *scene.Builder) {
				s.add(cb, spec.Children, where, errp)
			})
		}
	}
}

// node converts the spec's own fields; children are handled by add.
func (spec *NodeSpec) node() (*layout.Node, error) {
	anchor := layout.Center
	if spec.Anchor != nil {
		anchor = layout.Anchor(*spec.Anchor)
	}
	t := layout.NewTransform(anchor)
	if spec.ParentAnchor != nil {
		t.ParentAnchor = layout.Some(layout.Anchor(*spec.ParentAnchor))
	}
	if spec.Center != nil {
		t.Center = layout.Some(layout.Anchor(*spec.Center))
	}
	if spec.Offset != "" {
		off, err := ParseSize(spec.Offset)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		t.Offset = off
	}
	if spec.Scale != nil {
		t.Scale = layout.Vec2(*spec.Scale)
	}
	t.Rotation = degrees(spec.Rotation)
	t.Z = spec.Z

	var dim layout.Dimension
	switch {
	case spec.Size != "":
		size, err := ParseSize(spec.Size)
		if err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
		dim = layout.OwnedDimension(size)
	case spec.Text != "":
		dim = layout.CopiedDimension()
	default:
		dim = layout.OwnedDimension(layout.Full())
	}
	fs, err := ParseFontSize(spec.FontSize)
	if err != nil {
		return nil, fmt.Errorf("font_size: %w", err)
	}
	dim.FontSize = fs

	n := layout.NewNode(t, dim)
	if spec.Opacity != nil {
		n.Opacity.Local = *spec.Opacity
	}
	if n.Control, err = ParseControl(spec.Control); err != nil {
		return nil, err
	}
	if spec.Coordinate != nil {
		n.Coordinate = layout.Vec2(*spec.Coordinate)
	}
	if spec.Container != nil {
		if n.Container, err = spec.Container.container(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (spec *ContainerSpec) container() (*layout.Container, error) {
	l, err := DecodeLayout(spec.Layout)
	if err != nil {
		return nil, err
	}
	c := layout.NewContainer(l)
	if spec.Margin != "" {
		if c.Margin, err = ParseSize(spec.Margin); err != nil {
			return nil, fmt.Errorf("margin: %w", err)
		}
	}
	if spec.Padding != "" {
		if c.Padding, err = ParseSize(spec.Padding); err != nil {
			return nil, fmt.Errorf("padding: %w", err)
		}
	}
	if c.Range, err = ParseRange(spec.Range); err != nil {
		return nil, err
	}
	return c, nil
}

// BindLabels returns the scene's labels measured with m.
func (s *Scene) BindLabels(m text.Measurer) *text.Labels {
	labels := text.NewLabels(m)
	for id, l := range s.Labels {
		labels.Set(id, l)
	}
	return labels
}

// Solve measures labels with m, if non-nil, and runs a pass with solver.
// A nil solver uses layout.Solve.
func (s *Scene) Solve(solver *layout.Solver, m text.Measurer) error {
	if m != nil {
		s.BindLabels(m).Apply(s.Graph, s.Root)
	}
	if solver == nil {
		return layout.Solve(s.Graph, s.Root)
	}
	return solver.Solve(s.Graph, s.Root)
}
