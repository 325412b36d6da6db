package layout

// Direction is the order in which a layout advances along an axis.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case TopToBottom:
		return "TopToBottom"
	case BottomToTop:
		return "BottomToTop"
	default:
		return "Unknown"
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for d := LeftToRight; d <= BottomToTop; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return LeftToRight, false
}

// Horizontal reports whether the direction runs along X.
func (d Direction) Horizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// Unit returns the unit vector pointing in the direction.
func (d Direction) Unit() Vec2 {
	switch d {
	case RightToLeft:
		return Vec2{X: -1}
	case TopToBottom:
		return Vec2{Y: 1}
	case BottomToTop:
		return Vec2{Y: -1}
	default:
		return Vec2{X: 1}
	}
}

// crossUnit is the screen-positive unit vector of the other axis.
func (d Direction) crossUnit() Vec2 {
	if d.Horizontal() {
		return Vec2{Y: 1}
	}
	return Vec2{X: 1}
}

// along returns the component of v on this direction's axis.
func (d Direction) along(v Vec2) float64 {
	if d.Horizontal() {
		return v.X
	}
	return v.Y
}

// across returns the component of v on the other axis.
func (d Direction) across(v Vec2) float64 {
	if d.Horizontal() {
		return v.Y
	}
	return v.X
}

// size builds a vector from main and cross axis lengths.
func (d Direction) size(main, cross float64) Vec2 {
	if d.Horizontal() {
		return Vec2{X: main, Y: cross}
	}
	return Vec2{X: cross, Y: main}
}

// stackFor returns the direction lines or rows advance in. A stack
// direction parallel to main is replaced by the conventional one:
// horizontal lines advance top to bottom, vertical lines left to right.
func stackFor(main, stack Direction) Direction {
	if main.Horizontal() != stack.Horizontal() {
		return stack
	}
	if main.Horizontal() {
		return TopToBottom
	}
	return LeftToRight
}

// Alignment positions a block inside a larger extent.
type Alignment uint8

const (
	AlignStart  Alignment = iota // Flush with the start edge
	AlignCenter                  // Centred
	AlignEnd                     // Flush with the end edge
)

// String returns the name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// ParseAlignment is the inverse of Alignment.String.
func ParseAlignment(s string) (Alignment, bool) {
	for a := AlignStart; a <= AlignEnd; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return AlignStart, false
}

// Factor returns 0, 0.5 or 1: the share of free space placed before the block.
func (a Alignment) Factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1
	default:
		return 0
	}
}
