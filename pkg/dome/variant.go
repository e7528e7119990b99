package dome

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/domekit/pkg/geom"
)

// Variant supplies the base skeleton and cut rules for one dome shape.
// Implementations are stateless values; all geometry is derived from the
// radius at generation time.
type Variant interface {
	// Name is the stable identifier used by the scripting and app layers.
	Name() string

	// Base returns the un-subdivided vertex positions and face index
	// triples. Faces adjacent to the rim are wound bottom-edge-first so
	// that subdivision row 0 lies along the rim edge.
	Base(radius float64) ([]v3.Vec, [][3]int)

	// Threshold returns the hemisphere cut height. Triangles whose
	// centroid sits below it are discarded.
	Threshold(radius float64) float64

	// Rim returns the height of the planar base rim. ok is false when the
	// variant has no rim and every vertex is sphere-projected.
	Rim(radius float64) (height float64, ok bool)

	// DropSeam reports whether a triangle near the base seam should be
	// discarded to avoid a doubled layer of faces at the rim. Only
	// consulted for triangles of faces whose bottom edge lies on the rim.
	DropSeam(t geom.Triangle, frequency int, radius float64) bool
}

// Variants returns every supported dome shape.
func Variants() []Variant {
	return []Variant{Icosahedron{}, PentagonRingFlatRim{}, PentagonRingClosedCap{}}
}

// ParseVariant resolves a variant by its Name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
}
