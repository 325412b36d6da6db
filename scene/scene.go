package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/layout"
)

// Sentinel errors for graph edits.
var (
	// ErrCycle is returned when a reparent would make a node its own ancestor.
	ErrCycle = errors.New("scene: node would become its own ancestor")

	// ErrDuplicateName is returned when a name is already bound to another node.
	ErrDuplicateName = errors.New("scene: duplicate node name")
)

type entry struct {
	node      *layout.Node
	parent    layout.NodeID
	hasParent bool
	children  []layout.NodeID
	name      string
	alive     bool
}

// Graph is an in-memory scene graph that the layout solver can walk.
//
// Node IDs are indices into an arena and are never reused, so an ID held
// across a Remove simply stops resolving. Parent and child links are kept
// consistent by every edit; a Graph always satisfies layout.Tree's
// contract.
//
// Graph is not safe for concurrent use. Edits must not overlap a pass.
type Graph struct {
	entries []entry
	roots   []layout.NodeID
	names   map[string]layout.NodeID

	// version is incremented on each structural edit.
	version uint64
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		entries: make([]entry, 0, 64),
		names:   make(map[string]layout.NodeID),
	}
}

// Reset removes every node. IDs issued before Reset must not be reused.
func (g *Graph) Reset() {
	g.entries = g.entries[:0]
	g.roots = g.roots[:0]
	clear(g.names)
	g.version++
}

// Version returns a counter that changes whenever the structure changes.
// Edits to a node's own fields through Node do not bump it.
func (g *Graph) Version() uint64 {
	return g.version
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	n := 0
	for i := range g.entries {
		if g.entries[i].alive {
			n++
		}
	}
	return n
}

// AddRoot adds a top-level node. A nil node is replaced by one that fills
// its parent.
func (g *Graph) AddRoot(n *layout.Node) layout.NodeID {
	id := g.alloc(n)
	g.roots = append(g.roots, id)
	return id
}

// AddChild adds n as the last child of parent.
func (g *Graph) AddChild(parent layout.NodeID, n *layout.Node) (layout.NodeID, error) {
	p := g.get(parent)
	if p == nil {
		return 0, unknown(parent)
	}
	id := g.alloc(n)
	e := &g.entries[id]
	e.parent, e.hasParent = parent, true
	// alloc may have grown the arena; look the parent up again.
	p = &g.entries[parent]
	p.children = append(p.children, id)
	return id, nil
}

func (g *Graph) alloc(n *layout.Node) layout.NodeID {
	if n == nil {
		n = layout.NewNode(layout.NewTransform(layout.Center), layout.OwnedDimension(layout.Full()))
	}
	id := layout.NodeID(len(g.entries))
	g.entries = append(g.entries, entry{node: n, alive: true})
	g.version++
	return id
}

func (g *Graph) get(id layout.NodeID) *entry {
	if int(id) >= len(g.entries) || !g.entries[id].alive {
		return nil
	}
	return &g.entries[id]
}

func unknown(id layout.NodeID) error {
	return fmt.Errorf("scene: %w: %v", layout.ErrUnknownNode, id)
}

// SetName binds a unique name to id. An empty name removes the binding.
func (g *Graph) SetName(id layout.NodeID, name string) error {
	e := g.get(id)
	if e == nil {
		return unknown(id)
	}
	if other, ok := g.names[name]; ok && other != id {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if e.name != "" {
		delete(g.names, e.name)
	}
	e.name = name
	if name != "" {
		g.names[name] = id
	}
	return nil
}

// Name returns the name bound to id, or "".
func (g *Graph) Name(id layout.NodeID) string {
	if e := g.get(id); e != nil {
		return e.name
	}
	return ""
}

// Lookup returns the node bound to name.
func (g *Graph) Lookup(name string) (layout.NodeID, bool) {
	id, ok := g.names[name]
	return id, ok
}

// Reparent moves id, with its subtree, to the end of parent's children.
func (g *Graph) Reparent(id, parent layout.NodeID) error {
	e := g.get(id)
	if e == nil {
		return unknown(id)
	}
	if g.get(parent) == nil {
		return unknown(parent)
	}
	for a, ok := parent, true; ok; a, ok = g.Parent(a) {
		if a == id {
			return fmt.Errorf("%w: %v under %v", ErrCycle, id, parent)
		}
	}
	g.unlink(id)
	e.parent, e.hasParent = parent, true
	g.entries[parent].children = append(g.entries[parent].children, id)
	g.version++
	return nil
}

// Detach makes id a top-level node.
func (g *Graph) Detach(id layout.NodeID) error {
	e := g.get(id)
	if e == nil {
		return unknown(id)
	}
	if !e.hasParent {
		return nil
	}
	g.unlink(id)
	e.hasParent = false
	g.roots = append(g.roots, id)
	g.version++
	return nil
}

// unlink removes id from its parent's child list, or from the roots.
func (g *Graph) unlink(id layout.NodeID) {
	e := &g.entries[id]
	if e.hasParent {
		p := &g.entries[e.parent]
		p.children = without(p.children, id)
		return
	}
	g.roots = without(g.roots, id)
}

func without(ids []layout.NodeID, id layout.NodeID) []layout.NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Remove deletes id and its whole subtree and returns how many nodes were
// removed.
func (g *Graph) Remove(id layout.NodeID) (int, error) {
	if g.get(id) == nil {
		return 0, unknown(id)
	}
	g.unlink(id)

	removed := 0
	stack := []layout.NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := &g.entries[cur]
		stack = append(stack, e.children...)
		if e.name != "" {
			delete(g.names, e.name)
		}
		*e = entry{}
		removed++
	}
	g.version++
	layout.Logger().Debug("scene: removed subtree", "root", id, "nodes", removed)
	return removed, nil
}

// Roots implements layout.Tree.
func (g *Graph) Roots() []layout.NodeID {
	return g.roots
}

// Parent implements layout.Tree.
func (g *Graph) Parent(id layout.NodeID) (layout.NodeID, bool) {
	e := g.get(id)
	if e == nil || !e.hasParent {
		return 0, false
	}
	return e.parent, true
}

// Children implements layout.Tree.
func (g *Graph) Children(id layout.NodeID) []layout.NodeID {
	if e := g.get(id); e != nil {
		return e.children
	}
	return nil
}

// Node implements layout.Tree. The returned pointer stays valid until id
// is removed.
func (g *Graph) Node(id layout.NodeID) *layout.Node {
	if e := g.get(id); e != nil {
		return e.node
	}
	return nil
}

// Walk calls fn for every live node in breadth-first order, the order the
// solver visits them in. depth is 0 for roots. Returning false stops the
// walk.
func (g *Graph) Walk(fn func(id layout.NodeID, depth int) bool) {
	type item struct {
		id    layout.NodeID
		depth int
	}
	queue := make([]item, 0, len(g.roots))
	for _, id := range g.roots {
		queue = append(queue, item{id, 0})
	}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if !fn(it.id, it.depth) {
			return
		}
		for _, c := range g.Children(it.id) {
			queue = append(queue, item{c, it.depth + 1})
		}
	}
}

// HitTest returns the topmost visible node whose rect from the last pass
// contains p. Ties in Z go to the node visited later.
func (g *Graph) HitTest(p layout.Vec2) (layout.NodeID, bool) {
	var (
		hit   layout.NodeID
		found bool
		top   float64
	)
	g.Walk(func(id layout.NodeID, _ int) bool {
		res := g.Node(id).Result
		if !res.Visible || !res.Rect.Contains(p) {
			return true
		}
		if !found || res.Rect.Z >= top {
			hit, found, top = id, true, res.Rect.Z
		}
		return true
	})
	return hit, found
}

var _ layout.Tree = (*Graph)(nil)
