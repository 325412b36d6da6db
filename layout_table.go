package layout

import "fmt"

// TableColumns selects how a Table derives its column widths.
type TableColumns uint8

const (
	// ColumnsFixed takes each width from Table.Widths.
	ColumnsFixed TableColumns = iota
	// ColumnsProportional splits the container's length by Table.Weights.
	ColumnsProportional
	// ColumnsFlex measures each column as its widest child.
	ColumnsFlex
)

// String returns the name of the column mode.
func (c TableColumns) String() string {
	switch c {
	case ColumnsFixed:
		return "fixed"
	case ColumnsProportional:
		return "proportional"
	case ColumnsFlex:
		return "flex"
	default:
		return "unknown"
	}
}

// Table places children row by row into columns of individual widths.
// Each row is as thick as its thickest child. Row completion and
// alignment of incomplete rows follow Grid.
type Table struct {
	Row       Direction
	Column    Direction
	Mode      TableColumns
	Widths    []Length
	Weights   []float64
	Count     int
	Alignment Alignment
}

// NewFixedTable returns a table with explicit column widths.
func NewFixedTable(widths ...Length) (Table, error) {
	if len(widths) == 0 {
		return Table{}, fmt.Errorf("layout: fixed table: %w", ErrNoColumns)
	}
	return Table{Row: LeftToRight, Column: TopToBottom, Mode: ColumnsFixed, Widths: widths}, nil
}

// NewProportionalTable returns a table whose columns share the container's
// length by weight. Equal weights split it evenly.
func NewProportionalTable(weights ...float64) (Table, error) {
	if len(weights) == 0 {
		return Table{}, fmt.Errorf("layout: proportional table: %w", ErrNoColumns)
	}
	return Table{Row: LeftToRight, Column: TopToBottom, Mode: ColumnsProportional, Weights: weights}, nil
}

// NewFlexTable returns a table of n columns sized to their content.
func NewFlexTable(n int) (Table, error) {
	if n <= 0 {
		return Table{}, fmt.Errorf("layout: flex table with %d columns: %w", n, ErrNoColumns)
	}
	return Table{Row: LeftToRight, Column: TopToBottom, Mode: ColumnsFlex, Count: n}, nil
}

// Kind implements Layout.
func (Table) Kind() string { return "table" }

// columns returns the number of columns configured for the mode.
func (t Table) columns() int {
	switch t.Mode {
	case ColumnsProportional:
		return len(t.Weights)
	case ColumnsFlex:
		return t.Count
	default:
		return len(t.Widths)
	}
}

// Place implements Layout.
func (t Table) Place(info Info, items []Item, rng *Range) Output {
	columns := t.columns()
	if columns <= 0 {
		panic(fmt.Errorf("layout: %s table: %w", t.Mode, ErrNoColumns))
	}
	offered := len(items)
	visible := window(items, rng)
	dir := t.Row
	stack := stackFor(dir, t.Column)
	rows := splitRows(visible, columns, dir)
	margin := dir.along(info.Margin)

	widths := make([]float64, columns)
	length := dir.along(info.Dimension)
	switch t.Mode {
	case ColumnsProportional:
		available := length - margin*float64(columns-1)
		sum := 0.0
		for _, w := range t.Weights {
			sum += max(finite(w), 0)
		}
		for c, w := range t.Weights {
			if sum > 0 {
				widths[c] = available * max(finite(w), 0) / sum
			} else {
				widths[c] = available / float64(columns)
			}
		}
	case ColumnsFlex:
		for _, row := range rows {
			for c, i := range row.items {
				widths[c] = max(widths[c], dir.along(visible[i].Dimension))
			}
		}
	default:
		for c, w := range t.Widths {
			widths[c] = w.Resolve(length, info.Em, info.Rem)
		}
	}
	for c := range widths {
		widths[c] = max(finite(widths[c]), 0)
	}

	thickness := make([]float64, len(rows))
	for r, row := range rows {
		thickness[r] = row.marker
		for _, i := range row.items {
			thickness[r] = max(thickness[r], dir.across(visible[i].Dimension))
		}
	}

	return finish(placeRows(visible, rows, gridGeometry{
		dir:       dir,
		stack:     stack,
		widths:    widths,
		thickness: thickness,
		margin:    margin,
		gap:       dir.across(info.Margin),
		alignment: t.Alignment,
	}), offered)
}
