package dome

// ColorCycler assigns palette indices to retained triangles in round-robin
// order. The assignment is a pure function of ordinal position in the
// emission stream, never of geometry.
type ColorCycler struct {
	next int
	size int
}

// NewColorCycler returns a cycler over a palette of the given size.
func NewColorCycler(size int) *ColorCycler {
	return &ColorCycler{size: size}
}

// Next returns the palette index for the next retained triangle.
func (c *ColorCycler) Next() int {
	i := c.next % c.size
	c.next++
	return i
}
