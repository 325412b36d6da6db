package layout

// Container makes a node arrange its children with a Layout.
type Container struct {
	Layout Layout
	// Margin is the gap between children.
	Margin Size2
	// Padding is added on every side between the container's edge and its
	// content.
	Padding Size2
	Range   Range
}

// NewContainer returns a container that shows all children.
func NewContainer(l Layout) *Container {
	return &Container{Layout: l, Range: AllItems()}
}

// info resolves the geometry handed to the layout from the container's own
// dimension. It also returns the resolved padding of one side.
func (c *Container) info(own Vec2, em, rem float64) (Info, Vec2) {
	pad := c.Padding.Resolve(own, em, rem).Max(Vec2{})
	return Info{
		Dimension: own.Sub(pad.Mul(2)).Max(Vec2{}),
		Em:        em,
		Rem:       rem,
		Margin:    c.Margin.Resolve(own, em, rem),
	}, pad
}
