package layout

// DimensionSource selects where a node's size comes from.
type DimensionSource uint8

const (
	// Owned sizes come from the node's own Size2.
	Owned DimensionSource = iota
	// Copied sizes are written in pixels by an external collaborator
	// (text metrics, image intrinsic size) before each pass.
	Copied
)

// FontSizeKind selects how a node derives its em.
type FontSizeKind uint8

const (
	FontInherit FontSizeKind = iota // Use the parent's em
	FontPixels                      // Absolute pixels
	FontEms                         // Multiple of the parent's em
	FontRems                        // Multiple of the root em
)

// FontSize sets the em of a node and, through inheritance, its subtree.
type FontSize struct {
	Kind  FontSizeKind
	Value float64
}

// Resolve returns the effective em for a node whose parent resolved to parentEm.
func (f FontSize) Resolve(parentEm, rem float64) float64 {
	switch f.Kind {
	case FontPixels:
		return finite(f.Value)
	case FontEms:
		return finite(f.Value * parentEm)
	case FontRems:
		return finite(f.Value * rem)
	default:
		return parentEm
	}
}

// Dimension is the size specification of a node.
type Dimension struct {
	Source   DimensionSource
	Size     Size2
	Copied   Vec2
	FontSize FontSize
}

// OwnedDimension returns a Dimension sized by s.
func OwnedDimension(s Size2) Dimension {
	return Dimension{Source: Owned, Size: s}
}

// CopiedDimension returns a Dimension whose pixel size is written externally.
func CopiedDimension() Dimension {
	return Dimension{Source: Copied}
}

// Resolve computes the pixel size and effective em of the node.
// Owned sizes resolve against the parent size with the node's own em.
// The result never contains NaN or infinities.
func (d Dimension) Resolve(parent Vec2, parentEm, rem float64) (size Vec2, em float64) {
	em = d.FontSize.Resolve(parentEm, rem)
	switch d.Source {
	case Copied:
		size = d.Copied
	default:
		size = d.Size.Resolve(parent, em, rem)
	}
	return size.Finite(), finite(em)
}
