package dome

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/domekit/pkg/geom"
)

// rimDrop places the base rim ring below the equatorial plane, as a fixed
// fraction of the radius, to visually close the dome's base. Rim vertices
// sit off the sphere and are never projected.
const rimDrop = 0.2

// capSeamClearance is the horizontal-distance cutoff (as a fraction of the
// radius) for the closed-cap seam rule: bottom-row triangles whose centroid
// hugs the rim closer than this are doubled by the base cap and discarded.
const capSeamClearance = 0.95

// PentagonRingFlatRim is the pentagon-ring dome base: a zenith vertex, an
// upper pentagon ring on the sphere, and a planar rim ring at -0.2*radius.
// The base stays open; the rim polygon is the dome's flat cut edge.
type PentagonRingFlatRim struct{}

func (PentagonRingFlatRim) Name() string { return "flat-rim" }

func (PentagonRingFlatRim) Base(radius float64) ([]v3.Vec, [][3]int) {
	return pentagonBase(radius, false)
}

func (PentagonRingFlatRim) Threshold(radius float64) float64 { return -rimDrop * radius }

func (PentagonRingFlatRim) Rim(radius float64) (float64, bool) {
	return -rimDrop * radius, true
}

// DropSeam discards the downward-pointing (odd column) triangles in the
// bottom two subdivision rows at even frequencies, where the rim seam
// otherwise shows a doubled layer of faces.
func (PentagonRingFlatRim) DropSeam(t geom.Triangle, frequency int, radius float64) bool {
	if frequency%2 != 0 {
		return false
	}
	return t.Row <= 1 && t.Col%2 == 1
}

// PentagonRingClosedCap is the pentagon-ring base with a nadir vertex at
// rim height and five cap faces closing the dome's bottom.
type PentagonRingClosedCap struct{}

func (PentagonRingClosedCap) Name() string { return "closed-cap" }

func (PentagonRingClosedCap) Base(radius float64) ([]v3.Vec, [][3]int) {
	return pentagonBase(radius, true)
}

func (PentagonRingClosedCap) Threshold(radius float64) float64 { return -rimDrop * radius }

func (PentagonRingClosedCap) Rim(radius float64) (float64, bool) {
	return -rimDrop * radius, true
}

// DropSeam discards bottom-two-row triangles whose centroid lies further
// from the vertical axis than capSeamClearance*radius at even frequencies;
// those triangles overlap the base cap at the seam.
func (PentagonRingClosedCap) DropSeam(t geom.Triangle, frequency int, radius float64) bool {
	if frequency%2 != 0 || t.Row > 1 {
		return false
	}
	c := t.Centroid()
	return math.Hypot(c.X, c.Y) > capSeamClearance*radius
}

// pentagonBase builds the shared pentagon-ring skeleton. The upper ring
// sits on the sphere at z = radius/sqrt(5) (icosahedral latitude); the rim
// ring sits at z = -rimDrop*radius with azimuths offset half a step so the
// band between the rings triangulates cleanly. Faces whose bottom edge is
// on the rim are wound with that edge first.
func pentagonBase(radius float64, withNadir bool) ([]v3.Vec, [][3]int) {
	rimZ := -rimDrop * radius
	upperZ := radius / math.Sqrt(5)
	upperR := 2 * radius / math.Sqrt(5)

	verts := make([]v3.Vec, 0, 12)
	verts = append(verts, v3.Vec{X: 0, Y: 0, Z: radius}) // zenith

	for k := 0; k < 5; k++ {
		a := 2 * math.Pi * float64(k) / 5
		verts = append(verts, v3.Vec{
			X: upperR * math.Cos(a),
			Y: upperR * math.Sin(a),
			Z: upperZ,
		})
	}
	for k := 0; k < 5; k++ {
		a := 2 * math.Pi * (float64(k) + 0.5) / 5
		verts = append(verts, v3.Vec{
			X: radius * math.Cos(a),
			Y: radius * math.Sin(a),
			Z: rimZ,
		})
	}

	ring := func(k int) int { return 1 + k%5 }
	rim := func(k int) int { return 6 + k%5 }

	var faces [][3]int
	// Top cap: ring edge first, zenith at the tip.
	for k := 0; k < 5; k++ {
		faces = append(faces, [3]int{ring(k), ring(k + 1), 0})
	}
	// Band, upward-pointing: rim edge first.
	for k := 0; k < 5; k++ {
		faces = append(faces, [3]int{rim(k), rim(k + 1), ring(k + 1)})
	}
	// Band, downward-pointing: ring edge first, rim vertex at the tip.
	for k := 0; k < 5; k++ {
		faces = append(faces, [3]int{ring(k), ring(k + 1), rim(k)})
	}

	if withNadir {
		nadir := len(verts)
		verts = append(verts, v3.Vec{X: 0, Y: 0, Z: rimZ})
		for k := 0; k < 5; k++ {
			faces = append(faces, [3]int{rim(k), rim(k + 1), nadir})
		}
	}
	return verts, faces
}
