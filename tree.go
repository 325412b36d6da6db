package layout

import "fmt"

// NodeID identifies a node in a Tree.
type NodeID uint32

// String implements fmt.Stringer.
func (id NodeID) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}

// Node is the per-node storage the solver reads and writes.
// Inputs are authored between passes; Result is overwritten by every pass
// and is only meaningful between passes.
//
// A zero Node has zero scale and zero opacity, so it resolves to an empty
// transparent rect. Create nodes with NewNode and NewTransform.
type Node struct {
	Transform Transform2D
	Dimension Dimension
	Opacity   Opacity
	// Container is nil for nodes that place their children manually.
	Container *Container
	// Control is read by the parent's container, if any.
	Control Control
	// Coordinate is the cell used by a parent Sparse layout.
	Coordinate Vec2

	Result Result
}

// Result is the output of a pass for one node.
type Result struct {
	Rect RotatedRect
	// Dimension is the resolved pixel size, before scale.
	Dimension Vec2
	Em        float64
	// Opacity is the local opacity multiplied down the tree.
	Opacity float64
	// Visible is false when an ancestor container left the node out of its
	// range window or trimmed it as whitespace.
	Visible bool
}

// NewNode returns a node with the given transform and dimension, full
// opacity and no container.
func NewNode(t Transform2D, d Dimension) *Node {
	return &Node{Transform: t, Dimension: d, Opacity: Opacity{Local: 1}}
}

// Tree is the scene-graph collaborator the solver walks.
//
// Implementations must keep Parent and Children consistent before a pass:
// every ID listed by Children(p) must report p as its parent, and every ID
// listed by Roots must have no parent.
type Tree interface {
	Roots() []NodeID
	Parent(id NodeID) (NodeID, bool)
	Children(id NodeID) []NodeID
	// Node returns mutable storage for id, or nil if id is unknown.
	Node(id NodeID) *Node
}
