package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// keyScale quantizes coordinates to 3 decimal digits. Two points closer
// than the rounding tolerance map to the same key and are treated as one
// vertex. The precision is derived from the smallest expected vertex
// spacing (frequency 6): grid points sit orders of magnitude further
// apart than 1e-3 at any practical radius.
const keyScale = 1000

// Vertex is a mesh point. BasePerimeter vertices lie on the dome's planar
// base rim and must never be projected onto the enclosing sphere.
type Vertex struct {
	Pos           v3.Vec
	BasePerimeter bool
}

// VertexKey is the quantized coordinate identity of a vertex.
type VertexKey [3]int64

// KeyOf returns the deduplication key for a point.
func KeyOf(p v3.Vec) VertexKey {
	return VertexKey{quantize(p.X), quantize(p.Y), quantize(p.Z)}
}

func quantize(c float64) int64 {
	return int64(math.Round(c * keyScale))
}
