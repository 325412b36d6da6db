package layout

import (
	"fmt"
	"log/slog"
	"time"
)

// RootInfo is the context top-level nodes are resolved against, typically
// the output surface.
type RootInfo struct {
	Rect      RotatedRect
	Dimension Vec2
	Em        float64
	Rem       float64
}

// Viewport returns a RootInfo for a surface of the given size with its
// top-left corner at the origin. em is used both as the root em and as the
// initial em of top-level nodes.
func Viewport(size Vec2, em float64) RootInfo {
	return RootInfo{
		Rect:      RectFromBounds(Vec2{}, size),
		Dimension: size,
		Em:        em,
		Rem:       em,
	}
}

// resolvedDimension is a child's dimension resolved by its container's
// step, handed down so the child does not resolve it again.
type resolvedDimension struct {
	size Vec2
	em   float64
}

// parentInfo is the snapshot a queued node is resolved against. It is
// copied out of the parent's step and never refers back to parent storage.
type parentInfo struct {
	id        NodeID
	hasID     bool
	frame     parentFrame
	dimension Vec2
	em        float64
	rem       float64
	opacity   float64
	visible   bool
	pre       *resolvedDimension
}

type work struct {
	id     NodeID
	parent parentInfo
}

// Solver runs propagation passes. A Solver holds no per-pass state and may
// be reused; a single pass is synchronous and must not overlap with writes
// to the tree.
type Solver struct {
	opts solverOptions
}

// NewSolver creates a Solver with the given options.
func NewSolver(opts ...SolverOption) *Solver {
	o := defaultSolverOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{opts: o}
}

// Solve resolves every node reachable from tree.Roots() in breadth-first
// order and writes each node's Result.
//
// The only error is an inconsistent tree (ErrHierarchy, ErrUnknownNode).
// It aborts the pass immediately, leaving some results from this pass and
// some from the previous one; callers should treat it as fatal.
func Solve(tree Tree, root RootInfo) error {
	return NewSolver().Solve(tree, root)
}

// Solve runs one pass over tree. See the package-level Solve.
func (s *Solver) Solve(tree Tree, root RootInfo) error {
	log := s.logger()
	start := time.Now()
	var stats PassStats

	base := parentInfo{
		frame:     parentFrame{rect: root.Rect},
		dimension: root.Dimension,
		em:        root.Em,
		rem:       root.Rem,
		opacity:   1,
		visible:   true,
	}

	var current, next []work
	for _, id := range tree.Roots() {
		current = append(current, work{id: id, parent: base})
	}

	for len(current) > 0 {
		stats.Levels++
		next = next[:0]
		for _, w := range current {
			var err error
			next, err = s.step(tree, w, next, &stats)
			if err != nil {
				log.Error("layout pass aborted", "node", w.id, "level", stats.Levels, "err", err)
				return err
			}
		}
		current, next = next, current
	}

	stats.Duration = time.Since(start)
	s.opts.observer.ObservePass(stats)
	log.Debug("layout pass",
		"nodes", stats.Nodes,
		"levels", stats.Levels,
		"containers", stats.Containers,
		"hidden", stats.Hidden,
		"duration", stats.Duration,
	)
	return nil
}

// MustSolve is like Solve but panics on an inconsistent tree.
func (s *Solver) MustSolve(tree Tree, root RootInfo) {
	if err := s.Solve(tree, root); err != nil {
		panic(err)
	}
}

func (s *Solver) logger() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}
	return Logger()
}

// step resolves one node and appends its children to next.
func (s *Solver) step(tree Tree, w work, next []work, stats *PassStats) ([]work, error) {
	parent := w.parent
	actual, hasParent := tree.Parent(w.id)
	if hasParent != parent.hasID || (hasParent && actual != parent.id) {
		return next, &HierarchyError{
			Node:        w.id,
			Expected:    parent.id,
			HasExpected: parent.hasID,
			Actual:      actual,
			HasActual:   hasParent,
		}
	}

	node := tree.Node(w.id)
	if node == nil {
		return next, fmt.Errorf("%w: %v", ErrUnknownNode, w.id)
	}
	stats.Nodes++
	if !parent.visible {
		stats.Hidden++
	}

	var size Vec2
	var em float64
	if parent.pre != nil {
		size, em = parent.pre.size, parent.pre.em
	} else {
		size, em = node.Dimension.Resolve(parent.dimension, parent.em, parent.rem)
	}
	offset := node.Transform.Offset.Resolve(parent.dimension, parent.em, parent.rem)
	opacity := node.Opacity.Compose(parent.opacity)

	self := parentInfo{
		id:      w.id,
		hasID:   true,
		em:      em,
		rem:     parent.rem,
		opacity: opacity,
		visible: parent.visible,
	}

	children := tree.Children(w.id)
	c := node.Container
	if c == nil || c.Layout == nil {
		rect := s.construct(w.id, parent.frame, node.Transform, offset, size)
		node.Result = Result{Rect: rect, Dimension: size, Em: em, Opacity: opacity, Visible: parent.visible}

		self.frame = parentFrame{rect: rect}
		self.dimension = size
		for _, child := range children {
			next = append(next, work{id: child, parent: self})
		}
		return next, nil
	}

	stats.Containers++
	info, pad := c.info(size, em, parent.rem)

	items := make([]Item, 0, len(children))
	pre := make(map[NodeID]*resolvedDimension, len(children))
	var ignored []NodeID
	for _, child := range children {
		cn := tree.Node(child)
		if cn == nil {
			return next, fmt.Errorf("%w: %v", ErrUnknownNode, child)
		}
		if cn.Control == IgnoreLayout {
			ignored = append(ignored, child)
			continue
		}
		csize, cem := cn.Dimension.Resolve(info.Dimension, em, parent.rem)
		pre[child] = &resolvedDimension{size: csize, em: cem}
		items = append(items, Item{
			ID:         child,
			Anchor:     cn.Transform.Anchor,
			Dimension:  csize.MulVec(cn.Transform.Scale).Abs(),
			Control:    cn.Control,
			Coordinate: cn.Coordinate,
		})
	}

	out := c.Layout.Place(info, items, &c.Range)
	s.opts.observer.ObservePlacement(c.Layout.Kind(), len(out.Placements))

	size = out.Dimension.Add(pad.Mul(2)).Finite()
	rect := s.construct(w.id, parent.frame, node.Transform, offset, size)
	node.Result = Result{Rect: rect, Dimension: size, Em: em, Opacity: opacity, Visible: parent.visible}

	// Children placed by the layout are pinned to a fixed point.
	placed := make(map[NodeID]bool, len(out.Placements))
	for _, p := range out.Placements {
		r, ok := pre[p.ID]
		if !ok || placed[p.ID] {
			continue
		}
		placed[p.ID] = true
		ci := self
		ci.frame = parentFrame{rect: rect, point: rect.Local(p.Point), fixed: true}
		ci.dimension = info.Dimension
		ci.pre = r
		next = append(next, work{id: p.ID, parent: ci})
	}

	// IgnoreLayout children see the container's own rectangle.
	for _, child := range ignored {
		ci := self
		ci.frame = parentFrame{rect: rect}
		ci.dimension = size
		next = append(next, work{id: child, parent: ci})
	}

	// Children left out by the layout are still resolved once, hidden.
	for _, it := range items {
		if placed[it.ID] {
			continue
		}
		ci := self
		ci.frame = parentFrame{rect: rect}
		ci.dimension = info.Dimension
		ci.visible = false
		ci.pre = pre[it.ID]
		next = append(next, work{id: it.ID, parent: ci})
	}
	return next, nil
}

func (s *Solver) construct(id NodeID, parent parentFrame, t Transform2D, offset, size Vec2) RotatedRect {
	rect, ok := constructRect(parent, t, offset, size, s.opts.zBias)
	if !ok {
		s.logger().Warn("non-finite geometry replaced by zero", "node", id)
	}
	return rect
}
