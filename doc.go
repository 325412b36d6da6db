// Package layout is a retained-mode 2D layout engine.
//
// # Overview
//
// Every node of a tree carries a [Transform2D] (where it sits relative to
// its parent) and a [Dimension] (how big it is). A [Solver] walks the tree
// once per frame and writes each node's [Result]: a world-space
// [RotatedRect], the resolved pixel size, the effective em and the composed
// opacity.
//
// Nodes that own a [Container] arrange their children algorithmically
// instead: [Bounds], [Stack], [Span], [Paragraph], [Grid], [Table] and
// [Sparse] all implement [Layout].
//
// # Quick Start
//
//	g := scene.New()
//	root := g.AddRoot(layout.NewNode(layout.NewTransform(layout.Center),
//	    layout.OwnedDimension(layout.Pixels(50, 50))))
//
//	if err := layout.Solve(g, layout.Viewport(layout.V2(200, 200), 16)); err != nil {
//	    // The scene graph is inconsistent; fix the caller.
//	}
//	rect := g.Node(root).Result.Rect
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Anchors range over [-0.5, 0.5] on both axes, (0, 0) is the centre
//   - Angles in radians
//
// # Evaluation Order
//
// Passes are breadth-first and visit each reachable node exactly once. A
// container resolves its children's dimensions during its own step so the
// layout sees final sizes; those sizes are then handed to the children
// rather than resolved again.
//
// A pass fails only when the tree is inconsistent (see [ErrHierarchy]).
// Degenerate numbers such as zero-sized parents never fail: every
// non-finite intermediate is replaced by zero before it reaches a Result.
package layout
