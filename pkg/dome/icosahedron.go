package dome

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/domekit/pkg/geom"
)

// Icosahedron is the golden-ratio icosahedron cut at the equator. All 12
// base vertices lie on the sphere; there is no planar rim, so the dome's
// lower boundary follows the subdivided triangles straddling z = 0.
type Icosahedron struct{}

func (Icosahedron) Name() string { return "icosahedron" }

// Base builds the 12 vertices from the three golden-ratio rectangles
// (Z up) and the standard 20-face index table, scaled to the radius.
func (Icosahedron) Base(radius float64) ([]v3.Vec, [][3]int) {
	t := (1 + math.Sqrt(5)) / 2
	s := radius / math.Sqrt(1+t*t)
	a, b := s, t*s

	verts := []v3.Vec{
		{X: -a, Y: 0, Z: b}, {X: a, Y: 0, Z: b},
		{X: -a, Y: 0, Z: -b}, {X: a, Y: 0, Z: -b},
		{X: 0, Y: b, Z: -a}, {X: 0, Y: b, Z: a},
		{X: 0, Y: -b, Z: -a}, {X: 0, Y: -b, Z: a},
		{X: b, Y: -a, Z: 0}, {X: b, Y: a, Z: 0},
		{X: -b, Y: -a, Z: 0}, {X: -b, Y: a, Z: 0},
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return verts, faces
}

func (Icosahedron) Threshold(radius float64) float64 { return 0 }

func (Icosahedron) Rim(radius float64) (float64, bool) { return 0, false }

func (Icosahedron) DropSeam(t geom.Triangle, frequency int, radius float64) bool {
	return false
}
