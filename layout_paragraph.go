package layout

// layoutEpsilon absorbs float error when deciding whether an item still fits.
const layoutEpsilon = 1e-6

// Paragraph is a wrapping Span. Children fill a line in Direction until the
// next one would overflow the container's main-axis length, then a new line
// starts in the Stack direction. Each line is laid out as a Span, and the
// block of lines is aligned on the stack axis by Alignment.
//
// A child with Linebreak ends its line. A LinebreakMarker ends the line
// without joining it; it is reported at the zero point, which carries no
// meaning. WhiteSpace children at the start or end of a line are not placed.
type Paragraph struct {
	Direction Direction
	// Stack is the direction lines advance in. A value parallel to
	// Direction selects top-to-bottom for horizontal text and left-to-right
	// for vertical text.
	Stack     Direction
	Alignment Alignment
	// Stretch justifies lines that wrapped because of overflow.
	Stretch bool
}

// Kind implements Layout.
func (Paragraph) Kind() string { return "paragraph" }

type paragraphLine struct {
	items     []int
	thickness float64
	overflow  bool
}

// Place implements Layout.
func (p Paragraph) Place(info Info, items []Item, rng *Range) Output {
	offered := len(items)
	visible := window(items, rng)
	dir := p.Direction
	stack := stackFor(dir, p.Stack)
	width := dir.along(info.Dimension)
	margin := dir.along(info.Margin)
	lineGap := dir.across(info.Margin)

	placed := make([]bool, len(visible))
	points := make([]Vec2, len(visible))

	var lines []paragraphLine
	var cur paragraphLine
	cursor := 0.0
	closeLine := func(overflow bool) {
		cur.items = trimWhiteSpace(visible, cur.items)
		for _, i := range cur.items {
			cur.thickness = max(cur.thickness, dir.across(visible[i].Dimension))
		}
		cur.overflow = overflow
		lines = append(lines, cur)
		cur = paragraphLine{}
		cursor = 0
	}

	for i, it := range visible {
		if it.Control == LinebreakMarker {
			cur.thickness = max(cur.thickness, dir.across(it.Dimension))
			placed[i] = true
			closeLine(false)
			continue
		}
		l := dir.along(it.Dimension)
		if len(cur.items) > 0 && cursor+margin+l > width+layoutEpsilon {
			closeLine(true)
		}
		if len(cur.items) > 0 {
			cursor += margin
		}
		cursor += l
		cur.items = append(cur.items, i)
		if it.Control == Linebreak {
			closeLine(false)
		}
	}
	if len(cur.items) > 0 {
		closeLine(false)
	}

	stackU := stack.Unit()
	s := 0.0
	for n, line := range lines {
		if n > 0 {
			s += lineGap
		}
		lineItems := make([]Item, len(line.items))
		for k, i := range line.items {
			lineItems[k] = visible[i]
		}
		linePoints := spanLine(lineItems, dir, width, line.thickness, margin, p.Stretch && line.overflow)
		offset := stackU.Mul(s + line.thickness/2)
		for k, i := range line.items {
			points[i] = linePoints[k].Add(offset)
			placed[i] = true
		}
		s += line.thickness
	}

	block := s
	extent := max(dir.across(info.Dimension), block)
	shift := stackU.Mul(-extent/2 + (extent-block)*p.Alignment.Factor())

	out := Output{
		Dimension:  dir.size(width, extent),
		Placements: make([]Placement, 0, len(visible)),
	}
	for i, it := range visible {
		if !placed[i] {
			continue
		}
		pt := points[i]
		if it.Control != LinebreakMarker {
			pt = pt.Add(shift)
		}
		out.Placements = append(out.Placements, Placement{ID: it.ID, Point: pt})
	}
	return finish(out, offered)
}

// trimWhiteSpace drops WhiteSpace items from both ends of a line.
func trimWhiteSpace(items []Item, line []int) []int {
	for len(line) > 0 && items[line[0]].Control == WhiteSpace {
		line = line[1:]
	}
	for len(line) > 0 && items[line[len(line)-1]].Control == WhiteSpace {
		line = line[:len(line)-1]
	}
	return line
}
