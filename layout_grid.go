package layout

import "fmt"

// GridCells selects how a Grid sizes its cells.
type GridCells uint8

const (
	// CellsFixed uses Grid.Cell as the cell size.
	CellsFixed GridCells = iota
	// CellsSized divides the container into Columns x Rows cells.
	CellsSized
	// CellsDynamic uses the largest child as the cell size.
	CellsDynamic
)

// String returns the name of the cell mode.
func (c GridCells) String() string {
	switch c {
	case CellsFixed:
		return "fixed"
	case CellsSized:
		return "sized"
	case CellsDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Grid places children into uniform cells, Columns per row. Rows fill in
// Row direction and advance in Column direction. A row ends when it is
// full or after a Linebreak child; a LinebreakMarker ends it without
// taking a cell. Rows with empty cells are shifted by Alignment.
type Grid struct {
	Row Direction
	// Column is the direction rows advance in. A value parallel to Row
	// selects the conventional perpendicular direction.
	Column    Direction
	Columns   int
	Cells     GridCells
	Cell      Size2
	Rows      int
	Alignment Alignment
}

// NewGrid returns a left-to-right, top-to-bottom grid of the given
// number of columns with dynamically sized cells.
func NewGrid(columns int) (Grid, error) {
	if columns <= 0 {
		return Grid{}, fmt.Errorf("layout: grid with %d columns: %w", columns, ErrNoColumns)
	}
	return Grid{Row: LeftToRight, Column: TopToBottom, Columns: columns, Cells: CellsDynamic}, nil
}

// Kind implements Layout.
func (Grid) Kind() string { return "grid" }

// Place implements Layout.
func (g Grid) Place(info Info, items []Item, rng *Range) Output {
	if g.Columns <= 0 {
		panic(fmt.Errorf("layout: grid with %d columns: %w", g.Columns, ErrNoColumns))
	}
	offered := len(items)
	visible := window(items, rng)
	dir := g.Row
	stack := stackFor(dir, g.Column)
	rows := splitRows(visible, g.Columns, dir)

	margin := dir.along(info.Margin)
	gap := dir.across(info.Margin)

	var cellMain, cellCross float64
	switch g.Cells {
	case CellsSized:
		n := max(g.Rows, len(rows), 1)
		cellMain = (dir.along(info.Dimension) - margin*float64(g.Columns-1)) / float64(g.Columns)
		cellCross = (dir.across(info.Dimension) - gap*float64(n-1)) / float64(n)
	case CellsDynamic:
		for _, it := range visible {
			if it.Control == LinebreakMarker {
				continue
			}
			cellMain = max(cellMain, dir.along(it.Dimension))
			cellCross = max(cellCross, dir.across(it.Dimension))
		}
	default:
		cell := g.Cell.Resolve(info.Dimension, info.Em, info.Rem)
		cellMain, cellCross = dir.along(cell), dir.across(cell)
	}
	cellMain, cellCross = max(finite(cellMain), 0), max(finite(cellCross), 0)

	widths := make([]float64, g.Columns)
	for i := range widths {
		widths[i] = cellMain
	}
	thickness := make([]float64, len(rows))
	for i := range thickness {
		thickness[i] = cellCross
	}
	if g.Cells == CellsSized && g.Rows > len(rows) {
		// Empty trailing rows still occupy the container.
		for len(thickness) < g.Rows {
			thickness = append(thickness, cellCross)
		}
	}

	return finish(placeRows(visible, rows, gridGeometry{
		dir:       dir,
		stack:     stack,
		widths:    widths,
		thickness: thickness,
		margin:    margin,
		gap:       gap,
		alignment: g.Alignment,
	}), offered)
}

// gridRow is a run of item indices sharing a row.
type gridRow struct {
	items  []int
	marker float64 // cross size contributed by a LinebreakMarker ending the row
}

// splitRows groups items into rows of at most columns cells.
func splitRows(items []Item, columns int, dir Direction) []gridRow {
	var rows []gridRow
	var cur gridRow
	for i, it := range items {
		if it.Control == LinebreakMarker {
			cur.marker = max(cur.marker, dir.across(it.Dimension))
			rows = append(rows, cur)
			cur = gridRow{}
			continue
		}
		cur.items = append(cur.items, i)
		if len(cur.items) == columns || it.Control == Linebreak {
			rows = append(rows, cur)
			cur = gridRow{}
		}
	}
	if len(cur.items) > 0 {
		rows = append(rows, cur)
	}
	return rows
}

// gridGeometry is the resolved track layout shared by Grid and Table.
type gridGeometry struct {
	dir, stack Direction
	widths     []float64 // per column, main axis
	thickness  []float64 // per row, stack axis
	margin     float64   // between columns
	gap        float64   // between rows
	alignment  Alignment
}

// placeRows is the row/column kernel shared by Grid and Table.
func placeRows(items []Item, rows []gridRow, geo gridGeometry) Output {
	dir := geo.dir
	mainU := dir.Unit()
	stackU := geo.stack.Unit()

	width := 0.0
	starts := make([]float64, len(geo.widths))
	for c, w := range geo.widths {
		if c > 0 {
			width += geo.margin
		}
		starts[c] = width
		width += w
	}

	height := 0.0
	for r, t := range geo.thickness {
		if r > 0 {
			height += geo.gap
		}
		height += t
	}

	out := Output{
		Dimension:  dir.size(width, height),
		Placements: make([]Placement, 0, len(items)),
	}

	s := -height / 2
	for r, row := range rows {
		if r > 0 {
			s += geo.gap
		}
		thick := 0.0
		if r < len(geo.thickness) {
			thick = geo.thickness[r]
		}

		shift := 0.0
		if n := len(row.items); n > 0 && n < len(geo.widths) {
			used := starts[n-1] + geo.widths[n-1]
			shift = (width - used) * geo.alignment.Factor()
		}

		for c, i := range row.items {
			it := items[i]
			t := -width/2 + starts[c] + geo.widths[c]/2 + shift
			center := mainU.Mul(t).Add(stackU.Mul(s + thick/2))
			cell := dir.size(geo.widths[c], thick)
			center = center.Add(Vec2{
				X: alignIn(it.Anchor.X, cell.X, it.Dimension.X),
				Y: alignIn(it.Anchor.Y, cell.Y, it.Dimension.Y),
			})
			out.Placements = append(out.Placements, Placement{ID: it.ID, Point: pointFor(center, it)})
		}
		s += thick
	}

	// Markers carry no meaningful position.
	for _, it := range items {
		if it.Control == LinebreakMarker {
			out.Placements = append(out.Placements, Placement{ID: it.ID})
		}
	}
	return out
}

// alignIn offsets an item of the given size inside a cell by the sign of
// its anchor component.
func alignIn(anchor, cell, size float64) float64 {
	switch classify(anchor) {
	case classNeg:
		return -(cell - size) / 2
	case classPos:
		return (cell - size) / 2
	default:
		return 0
	}
}
