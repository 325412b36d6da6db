package layout

// Info is the container geometry handed to a Layout.
type Info struct {
	// Dimension is the container's content size: its resolved dimension
	// minus padding on both sides.
	Dimension Vec2
	Em        float64
	Rem       float64
	// Margin is the resolved gap between items (X between columns or along
	// horizontal lines, Y between rows or along vertical lines).
	Margin Vec2
}

// Item is one child as seen by a Layout.
type Item struct {
	ID        NodeID
	Anchor    Anchor
	Dimension Vec2
	Control   Control
	// Coordinate is the grid cell of the child, read only by Sparse.
	Coordinate Vec2
}

// Placement assigns a child the point where its own anchor must land.
// Points are in the container's local frame: origin at the container
// centre, unscaled and unrotated.
type Placement struct {
	ID    NodeID
	Point Vec2
}

// Output is the result of Layout.Place.
type Output struct {
	// Placements lists the children that are positioned this pass.
	// Children outside the range window, and trimmed whitespace, are absent.
	Placements []Placement
	// Dimension is the content size the container shrinks or grows to.
	Dimension Vec2
	// MaxCount is the number of items the layout was offered.
	MaxCount int
}

// Layout arranges a container's children.
//
// Place must call rng.Resolve(len(items)) before reading the window and may
// only place items inside it. Implementations must return finite values.
type Layout interface {
	Place(info Info, items []Item, rng *Range) Output
	// Kind names the algorithm, used for logging and metrics.
	Kind() string
}

// window resolves the range and returns the visible slice of items.
func window(items []Item, rng *Range) []Item {
	if rng == nil {
		return items
	}
	rng.Resolve(len(items))
	start, end := rng.Window(len(items))
	return items[start:end]
}

// finish sanitises an output before it leaves a layout.
func finish(out Output, offered int) Output {
	for i := range out.Placements {
		out.Placements[i].Point = out.Placements[i].Point.Finite()
	}
	out.Dimension = out.Dimension.Finite().Max(Vec2{})
	out.MaxCount = offered
	return out
}

// pointFor returns the world point of an item's own anchor when the item's
// box is centred at center.
func pointFor(center Vec2, it Item) Vec2 {
	return center.Add(it.Anchor.Of(it.Dimension))
}
