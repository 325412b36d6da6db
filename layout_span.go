package layout

// Stack packs its children one after another in Direction, shrinking to
// fit them. On the cross axis each child aligns by its own anchor.
type Stack struct {
	Direction Direction
}

// Kind implements Layout.
func (Stack) Kind() string { return "stack" }

// Place implements Layout.
func (s Stack) Place(info Info, items []Item, rng *Range) Output {
	offered := len(items)
	visible := window(items, rng)
	dir := s.Direction
	margin := dir.along(info.Margin)

	length, thickness := 0.0, 0.0
	counted := 0
	for _, it := range visible {
		thickness = max(thickness, dir.across(it.Dimension))
		if it.Control == LinebreakMarker {
			continue
		}
		if counted > 0 {
			length += margin
		}
		length += dir.along(it.Dimension)
		counted++
	}

	out := Output{
		Dimension:  dir.size(length, thickness),
		Placements: make([]Placement, 0, len(visible)),
	}
	cursor := -length / 2
	counted = 0
	for _, it := range visible {
		l := mainLength(dir, it)
		if it.Control != LinebreakMarker {
			if counted > 0 {
				cursor += margin
			}
			counted++
		}
		t := cursor + l/2
		cursor += l
		center := dir.Unit().Mul(t).Add(dir.crossUnit().Mul(crossOffset(dir, it, thickness)))
		out.Placements = append(out.Placements, Placement{ID: it.ID, Point: pointFor(center, it)})
	}
	return finish(out, offered)
}

// Span lays its children along a line of fixed length: the container's own
// size on the main axis. Children anchored toward the start of Direction
// pack from the start edge, children anchored toward the end pack from the
// end edge, and centred children are centred in the space left between.
type Span struct {
	Direction Direction
	// Stretch spreads unused main-axis space evenly between children.
	Stretch bool
}

// Kind implements Layout.
func (Span) Kind() string { return "span" }

// Place implements Layout.
func (s Span) Place(info Info, items []Item, rng *Range) Output {
	offered := len(items)
	visible := window(items, rng)
	dir := s.Direction
	length := dir.along(info.Dimension)

	thickness := 0.0
	for _, it := range visible {
		thickness = max(thickness, dir.across(it.Dimension))
	}

	points := spanLine(visible, dir, length, thickness, dir.along(info.Margin), s.Stretch)
	out := Output{
		Dimension:  dir.size(length, thickness),
		Placements: make([]Placement, len(visible)),
	}
	for i, it := range visible {
		out.Placements[i] = Placement{ID: it.ID, Point: points[i]}
	}
	return finish(out, offered)
}

// mainLength is an item's footprint along dir. Linebreak markers take none.
func mainLength(dir Direction, it Item) float64 {
	if it.Control == LinebreakMarker {
		return 0
	}
	return dir.along(it.Dimension)
}

// crossOffset centres an item on the cross axis of a line of the given
// thickness according to the cross component of its anchor.
func crossOffset(dir Direction, it Item, thickness float64) float64 {
	d := dir.across(it.Dimension)
	switch classify(dir.across(it.Anchor.Vec())) {
	case classNeg:
		return -thickness/2 + d/2
	case classPos:
		return thickness/2 - d/2
	default:
		return 0
	}
}

// spanLine places items on a single line centred at the origin and returns
// the anchor point of each item, index-aligned with items. Ties within a
// class keep insertion order.
func spanLine(items []Item, dir Direction, length, thickness, margin float64, stretch bool) []Vec2 {
	mainU := dir.Unit()
	crossU := dir.crossUnit()

	var neg, mid, pos []int
	total := 0.0
	spaced := 0
	for i, it := range items {
		total += mainLength(dir, it)
		if it.Control != LinebreakMarker {
			spaced++
		}
		switch classify(it.Anchor.Vec().Dot(mainU)) {
		case classNeg:
			neg = append(neg, i)
		case classPos:
			pos = append(pos, i)
		default:
			mid = append(mid, i)
		}
	}
	if stretch && spaced >= 2 {
		if spread := (length - total) / float64(spaced-1); spread > margin {
			margin = spread
		}
	}

	centers := make([]float64, len(items))

	// advance walks a class in the given order, returning the final cursor.
	advance := func(order []int, cursor, sign float64) float64 {
		first := true
		for _, i := range order {
			l := mainLength(dir, items[i])
			if items[i].Control != LinebreakMarker {
				if !first {
					cursor += sign * margin
				}
				first = false
			}
			centers[i] = cursor + sign*l/2
			cursor += sign * l
		}
		return cursor
	}

	negEnd := advance(neg, -length/2, 1)

	reversed := make([]int, len(pos))
	for k, i := range pos {
		reversed[len(pos)-1-k] = i
	}
	posStart := advance(reversed, length/2, -1)

	midLen := 0.0
	counted := 0
	for _, i := range mid {
		if items[i].Control == LinebreakMarker {
			continue
		}
		if counted > 0 {
			midLen += margin
		}
		midLen += mainLength(dir, items[i])
		counted++
	}
	advance(mid, (negEnd+posStart)/2-midLen/2, 1)

	points := make([]Vec2, len(items))
	for i, it := range items {
		center := mainU.Mul(centers[i]).Add(crossU.Mul(crossOffset(dir, it, thickness)))
		points[i] = pointFor(center, it)
	}
	return points
}
