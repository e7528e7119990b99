package dome

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/domekit/pkg/geom"
)

// Frequency bounds for Class-I subdivision.
const (
	MinFrequency = 2
	MaxFrequency = 6
)

// Subdivide splits one base face into frequency² triangles using a Class-I
// barycentric grid and emits them through visit, row by row from the
// face's bottom edge. Grid points are canonicalized through the pass-scoped
// table, so triangles sharing an edge across two faces share vertex
// identities. Emission is lazy and single-pass: returning false from visit
// stops the walk.
func Subdivide(corners [3]v3.Vec, frequency int, canon *geom.Canonicalizer, visit func(geom.Triangle) bool) error {
	if frequency < MinFrequency || frequency > MaxFrequency {
		return fmt.Errorf("frequency %d: %w", frequency, ErrInvalidFrequency)
	}

	f := float64(frequency)
	gridRow := func(i int) ([]*geom.Vertex, error) {
		v := float64(i) / f
		row := make([]*geom.Vertex, 0, frequency-i+1)
		for j := 0; j <= frequency-i; j++ {
			u := float64(j) / f
			s := 1 - u - v
			p := corners[0].MulScalar(s).
				Add(corners[1].MulScalar(u)).
				Add(corners[2].MulScalar(v))
			vert, err := canon.Canonical(p)
			if err != nil {
				return nil, err
			}
			row = append(row, vert)
		}
		return row, nil
	}

	prev, err := gridRow(0)
	if err != nil {
		return err
	}
	for i := 0; i < frequency; i++ {
		cur, err := gridRow(i + 1)
		if err != nil {
			return err
		}
		// Standard two-triangle-per-quad tessellation between rows i and
		// i+1; the final quad of each row reduces to a single triangle.
		for j := 0; j < frequency-i; j++ {
			up := geom.Triangle{A: prev[j], B: prev[j+1], C: cur[j], Row: i, Col: 2 * j}
			if !visit(up) {
				return nil
			}
			if j < frequency-i-1 {
				down := geom.Triangle{A: prev[j+1], B: cur[j+1], C: cur[j], Row: i, Col: 2*j + 1}
				if !visit(down) {
					return nil
				}
			}
		}
		prev = cur
	}
	return nil
}
