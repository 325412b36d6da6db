package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the layout package.
var (
	// ErrHierarchy is returned when a node's parent does not match the node
	// that reached it during traversal. The scene graph is inconsistent and
	// the pass is aborted.
	ErrHierarchy = errors.New("layout: hierarchy mismatch")

	// ErrNoColumns is returned when a grid or table is configured without
	// any columns.
	ErrNoColumns = errors.New("layout: layout has no columns")

	// ErrInvalidDirection is returned when a direction name is not one of
	// LeftToRight, RightToLeft, TopToBottom or BottomToTop.
	ErrInvalidDirection = errors.New("layout: invalid direction")

	// ErrUnknownNode is returned when a tree yields an ID it has no node for.
	ErrUnknownNode = errors.New("layout: unknown node")
)

// HierarchyError describes a parent/child mismatch found during a pass.
type HierarchyError struct {
	Node NodeID
	// Expected is the node that enqueued Node; HasExpected is false for roots.
	Expected    NodeID
	HasExpected bool
	// Actual is what the tree reports as Node's parent.
	Actual    NodeID
	HasActual bool
}

func (e *HierarchyError) Error() string {
	return fmt.Sprintf("layout: hierarchy mismatch at node %v: reached from %s, parent is %s",
		e.Node, optID(e.Expected, e.HasExpected), optID(e.Actual, e.HasActual))
}

// Unwrap makes errors.Is(err, ErrHierarchy) hold.
func (e *HierarchyError) Unwrap() error {
	return ErrHierarchy
}

func optID(id NodeID, ok bool) string {
	if !ok {
		return "root"
	}
	return id.String()
}
