package layout

import "math"

// Topology is the coordinate system of a Sparse layout.
type Topology uint8

const (
	// Rectangular maps (x, y) to x cells right and y cells down.
	Rectangular Topology = iota
	// Isometric maps x and y onto the two diagonals of a diamond grid.
	Isometric
	// Hexagonal uses x as the flat axis. Rows along y are 3/4 of a cell
	// apart and zig-zag: even rows shift by -cell/4 and odd rows by
	// +cell/4, so neighbouring rows sit half a cell apart like bricks.
	Hexagonal
)

// String returns the name of the topology.
func (t Topology) String() string {
	switch t {
	case Rectangular:
		return "rectangular"
	case Isometric:
		return "isometric"
	case Hexagonal:
		return "hexagonal"
	default:
		return "unknown"
	}
}

// Sparse places each child at the cell named by its coordinate rather than
// by its order. Children may overlap; nothing is packed.
type Sparse struct {
	Topology Topology
	Cell     Size2
	// Origin is the point of the container where coordinate (0, 0) sits.
	Origin Anchor
}

// Kind implements Layout.
func (Sparse) Kind() string { return "sparse" }

// Place implements Layout.
func (s Sparse) Place(info Info, items []Item, rng *Range) Output {
	offered := len(items)
	visible := window(items, rng)
	cell := s.Cell.Resolve(info.Dimension, info.Em, info.Rem)
	origin := s.Origin.Of(info.Dimension)

	out := Output{
		Dimension:  info.Dimension,
		Placements: make([]Placement, 0, len(visible)),
	}
	for _, it := range visible {
		center := origin.Add(s.cellCenter(it.Coordinate, cell))
		out.Placements = append(out.Placements, Placement{ID: it.ID, Point: pointFor(center, it)})
	}
	return finish(out, offered)
}

// cellCenter maps a grid coordinate to a pixel offset from the origin.
func (s Sparse) cellCenter(c, cell Vec2) Vec2 {
	switch s.Topology {
	case Isometric:
		u := Vec2{X: cell.X / 2, Y: cell.Y / 2}
		v := Vec2{X: -cell.X / 2, Y: cell.Y / 2}
		return u.Mul(c.X).Add(v.Mul(c.Y))
	case Hexagonal:
		zig := -cell.X / 4
		if int64(math.Round(c.Y))%2 != 0 {
			zig = -zig
		}
		return Vec2{X: c.X*cell.X + zig, Y: c.Y * cell.Y * 0.75}
	default:
		return c.MulVec(cell)
	}
}
