package geom

import (
	"errors"
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrDegenerateVertex indicates a point landed at the origin before sphere
// projection. Not expected for any valid input, but surfaced rather than
// silently producing a NaN-bearing vertex.
var ErrDegenerateVertex = errors.New("geom: degenerate vertex cannot be projected")

// Canonicalizer deduplicates spatially coincident vertices within a single
// generation pass. It is not a persistent cache: one table is created per
// generation call and discarded with it.
//
// Points on the variant's planar base rim (up coordinate within epsilon of
// the rim height) are snapped exactly to the rim height, kept unprojected,
// and flagged BasePerimeter. All other points are projected to distance
// radius from the origin. Keys are always computed from the snapped or
// projected point, never the raw interpolated one, since distinct raw
// points can project to the same canonical vertex.
type Canonicalizer struct {
	radius    float64
	rimHeight float64
	hasRim    bool
	eps       float64
	table     map[VertexKey]*Vertex
}

// NewCanonicalizer returns a table for a variant with no planar rim:
// every vertex is sphere-projected.
func NewCanonicalizer(radius float64) *Canonicalizer {
	return &Canonicalizer{
		radius: radius,
		eps:    1e-9 * radius,
		table:  make(map[VertexKey]*Vertex),
	}
}

// NewRimCanonicalizer returns a table for a variant whose planar base rim
// lies at rimHeight on the up (Z) axis.
func NewRimCanonicalizer(radius, rimHeight float64) *Canonicalizer {
	c := NewCanonicalizer(radius)
	c.rimHeight = rimHeight
	c.hasRim = true
	return c
}

// Canonical returns the vertex to use for a raw interpolated point. Two
// calls with key-equal points return the same *Vertex, so triangles that
// share an edge across two base faces share literal vertex identities.
func (c *Canonicalizer) Canonical(p v3.Vec) (*Vertex, error) {
	if c.hasRim && math.Abs(p.Z-c.rimHeight) <= c.eps {
		snapped := v3.Vec{X: p.X, Y: p.Y, Z: c.rimHeight}
		return c.lookup(snapped, true), nil
	}

	length := p.Length()
	if length <= c.eps {
		return nil, fmt.Errorf("point (%g, %g, %g): %w", p.X, p.Y, p.Z, ErrDegenerateVertex)
	}
	projected := p.MulScalar(c.radius / length)
	return c.lookup(projected, false), nil
}

// Len returns the number of distinct vertices seen so far.
func (c *Canonicalizer) Len() int {
	return len(c.table)
}

func (c *Canonicalizer) lookup(pos v3.Vec, perimeter bool) *Vertex {
	key := KeyOf(pos)
	if v, ok := c.table[key]; ok {
		return v
	}
	v := &Vertex{Pos: pos, BasePerimeter: perimeter}
	c.table[key] = v
	return v
}
