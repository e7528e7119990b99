package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Triangle is a subdivided face triangle, produced mid-pipeline before
// assembly. Row and Col locate it in its base face's subdivision grid:
// row 0 runs along the face's bottom edge, Col counts across the row with
// odd columns being the downward-pointing triangles.
type Triangle struct {
	A, B, C  *Vertex
	Row, Col int
}

// Centroid returns the average of the three vertex positions.
func (t Triangle) Centroid() v3.Vec {
	return t.A.Pos.Add(t.B.Pos).Add(t.C.Pos).MulScalar(1.0 / 3.0)
}
