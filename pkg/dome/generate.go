package dome

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/domekit/pkg/geom"
)

// hemisphereEpsilon absorbs float noise in centroid and rim comparisons.
// Scaled by the radius before use.
const hemisphereEpsilon = 1e-9

// Params are the inputs to one generation request.
type Params struct {
	Radius    float64
	Frequency int
	Variant   Variant
	Palette   []string
}

func (p Params) validate() error {
	if !(p.Radius > 0) {
		return fmt.Errorf("radius %g: %w", p.Radius, ErrInvalidRadius)
	}
	if p.Frequency < MinFrequency || p.Frequency > MaxFrequency {
		return fmt.Errorf("frequency %d: %w", p.Frequency, ErrInvalidFrequency)
	}
	if p.Variant == nil {
		return fmt.Errorf("no variant given: %w", ErrUnknownVariant)
	}
	if len(p.Palette) < 2 {
		return fmt.Errorf("palette has %d colors: %w", len(p.Palette), ErrInsufficientPalette)
	}
	return nil
}

// Generate builds the dome mesh for the given parameters. Each call is
// independent and allocates its own canonicalization table and output; the
// result is deterministic for identical inputs. Validation failures return
// before any geometry work begins.
func Generate(p Params) (*Mesh, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	verts, faces := p.Variant.Base(p.Radius)
	threshold := p.Variant.Threshold(p.Radius)
	eps := hemisphereEpsilon * p.Radius

	rimHeight, hasRim := p.Variant.Rim(p.Radius)
	var canon *geom.Canonicalizer
	if hasRim {
		canon = geom.NewRimCanonicalizer(p.Radius, rimHeight)
	} else {
		canon = geom.NewCanonicalizer(p.Radius)
	}

	colors := NewColorCycler(len(p.Palette))
	builder := newMeshBuilder(p.Palette)

	for _, face := range faces {
		corners := [3]v3.Vec{verts[face[0]], verts[face[1]], verts[face[2]]}

		// Coarse skip: a face with all corners strictly below the cut
		// cannot emit a retained triangle.
		if corners[0].Z < threshold-eps &&
			corners[1].Z < threshold-eps &&
			corners[2].Z < threshold-eps {
			continue
		}

		// The seam rule only concerns faces whose bottom edge is the rim.
		atRim := hasRim &&
			math.Abs(corners[0].Z-rimHeight) <= eps &&
			math.Abs(corners[1].Z-rimHeight) <= eps

		err := Subdivide(corners, p.Frequency, canon, func(t geom.Triangle) bool {
			if t.Centroid().Z < threshold-eps {
				return true
			}
			if atRim && p.Variant.DropSeam(t, p.Frequency, p.Radius) {
				return true
			}
			builder.add(t, colors.Next())
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("subdividing %s face: %w", p.Variant.Name(), err)
		}
	}
	return builder.mesh, nil
}
