package layout

// Control modifies how a container layout treats one of its children.
type Control uint8

const (
	// ControlNone lays the child out normally.
	ControlNone Control = iota
	// Linebreak places the child, then ends the current line or row after it.
	Linebreak
	// LinebreakMarker ends the current line or row without occupying any
	// main-axis space. Its cross-axis size still counts toward line height.
	LinebreakMarker
	// IgnoreLayout bypasses the container's algorithm; the child is placed
	// by its own transform against the container's rectangle.
	IgnoreLayout
	// WhiteSpace marks a child that is trimmed at the start or end of a
	// paragraph line.
	WhiteSpace
)

// String returns the name of the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "None"
	case Linebreak:
		return "Linebreak"
	case LinebreakMarker:
		return "LinebreakMarker"
	case IgnoreLayout:
		return "IgnoreLayout"
	case WhiteSpace:
		return "WhiteSpace"
	default:
		return "Unknown"
	}
}

// ParseControl is the inverse of Control.String.
func ParseControl(s string) (Control, bool) {
	for c := ControlNone; c <= WhiteSpace; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return ControlNone, false
}
