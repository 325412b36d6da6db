package scene

import "github.com/gogpu/layout"

// Builder provides a fluent API for constructing graphs.
//
// Nodes are added under the current parent; Children opens a scope in which
// the most recently added node is the parent. The first error is kept and
// turns every later call into a no-op, so a chain needs only one check at
// Build.
//
// Example:
//
//	g, err := scene.NewBuilder().
//	    Add("panel", panel).
//	    Children(func(b *scene.Builder) {
//	        b.Add("title", title).Add("body", body)
//	    }).
//	    Build()
type Builder struct {
	graph     *Graph
	parent    layout.NodeID
	hasParent bool
	last      layout.NodeID
	hasLast   bool
	err       error
}

// NewBuilder creates a builder with an empty graph.
func NewBuilder() *Builder {
	return &Builder{graph: New()}
}

// NewBuilderFrom creates a builder that adds roots to an existing graph.
func NewBuilderFrom(g *Graph) *Builder {
	if g == nil {
		g = New()
	}
	return &Builder{graph: g}
}

// Add adds n under the current parent and names it. An empty name leaves
// the node anonymous.
func (b *Builder) Add(name string, n *layout.Node) *Builder {
	if b.err != nil {
		return b
	}
	var id layout.NodeID
	if b.hasParent {
		id, b.err = b.graph.AddChild(b.parent, n)
		if b.err != nil {
			return b
		}
	} else {
		id = b.graph.AddRoot(n)
	}
	if name != "" {
		if b.err = b.graph.SetName(id, name); b.err != nil {
			return b
		}
	}
	b.last, b.hasLast = id, true
	return b
}

// Children runs fn with the most recently added node as the parent.
// It does nothing if no node has been added yet in the current scope.
func (b *Builder) Children(fn func(*Builder)) *Builder {
	if b.err != nil || fn == nil || !b.hasLast {
		return b
	}

	savedParent, savedHas := b.parent, b.hasParent
	savedLast := b.last

	b.parent, b.hasParent = b.last, true
	b.hasLast = false
	fn(b)

	b.parent, b.hasParent = savedParent, savedHas
	b.last, b.hasLast = savedLast, true
	return b
}

// Last returns the most recently added node in the current scope.
func (b *Builder) Last() (layout.NodeID, bool) {
	return b.last, b.hasLast
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the constructed graph and resets the builder for reuse.
func (b *Builder) Build() (*Graph, error) {
	g, err := b.graph, b.err
	*b = Builder{graph: New()}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Graph returns the graph under construction without resetting the builder.
func (b *Builder) Graph() *Graph {
	return b.graph
}
