package dome_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/chazu/domekit/pkg/dome"
)

var testPalette = []string{"#E74C3C", "#3498DB"}

func validParams() dome.Params {
	return dome.Params{
		Radius:    10,
		Frequency: 2,
		Variant:   dome.PentagonRingFlatRim{},
		Palette:   testPalette,
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dome.Params)
		want   error
	}{
		{"zero radius", func(p *dome.Params) { p.Radius = 0 }, dome.ErrInvalidRadius},
		{"negative radius", func(p *dome.Params) { p.Radius = -5 }, dome.ErrInvalidRadius},
		{"NaN radius", func(p *dome.Params) { p.Radius = math.NaN() }, dome.ErrInvalidRadius},
		{"frequency too low", func(p *dome.Params) { p.Frequency = 1 }, dome.ErrInvalidFrequency},
		{"frequency too high", func(p *dome.Params) { p.Frequency = 7 }, dome.ErrInvalidFrequency},
		{"nil variant", func(p *dome.Params) { p.Variant = nil }, dome.ErrUnknownVariant},
		{"empty palette", func(p *dome.Params) { p.Palette = nil }, dome.ErrInsufficientPalette},
		{"single color", func(p *dome.Params) { p.Palette = []string{"#FF0000"} }, dome.ErrInsufficientPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			m, err := dome.Generate(p)
			if !errors.Is(err, tt.want) {
				t.Errorf("Generate error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("Generate returned a mesh alongside a validation error")
			}
		})
	}
}

// The reference scenario: radius 10, frequency 2, flat-rim pentagon base.
// 15 base faces subdivide into 60 triangles; the parity seam rule drops the
// single odd-column bottom-row triangle on each of the 5 rim-adjacent
// faces, leaving 55. The 11 base vertices plus the 25 unique edge midpoints
// give 36 shared vertices.
func TestGenerateFlatRimReference(t *testing.T) {
	m, err := dome.Generate(validParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if got := m.TriangleCount(); got != 55 {
		t.Errorf("TriangleCount = %d, want 55", got)
	}
	if got := m.VertexCount(); got != 36 {
		t.Errorf("VertexCount = %d, want 36", got)
	}
	if got := m.EdgeCount(); got != 3*55 {
		t.Errorf("EdgeCount = %d, want %d", got, 3*55)
	}
	if len(m.FaceColors) != m.TriangleCount() {
		t.Errorf("FaceColors has %d entries for %d triangles", len(m.FaceColors), m.TriangleCount())
	}

	// Every retained centroid sits at or above the rim height.
	const rim = -2.0
	for i := 0; i < m.TriangleCount(); i++ {
		var cz float64
		for j := 0; j < 3; j++ {
			cz += float64(m.Positions[m.Faces[i*3+j]*3+2])
		}
		cz /= 3
		if cz < rim-1e-5 {
			t.Errorf("triangle %d centroid height %v below rim %v", i, cz, rim)
		}
	}
}

func TestGenerateSeamCounts(t *testing.T) {
	tests := []struct {
		frequency int
		want      int
	}{
		// 15 faces x f² minus 5 rim faces x (odd columns in rows 0 and 1).
		{2, 15*4 - 5*1},
		{3, 15 * 9},
		{4, 15*16 - 5*(3+2)},
		{5, 15 * 25},
		{6, 15*36 - 5*(5+4)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("frequency-%d", tt.frequency), func(t *testing.T) {
			p := validParams()
			p.Frequency = tt.frequency
			m, err := dome.Generate(p)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateClosedCapReference(t *testing.T) {
	p := validParams()
	p.Variant = dome.PentagonRingClosedCap{}
	m, err := dome.Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// At frequency 2 no band centroid reaches the 0.95*radius clearance,
	// so all 20 faces keep their 4 triangles; the 12 base vertices plus 30
	// edge midpoints dedupe to 42.
	if got := m.TriangleCount(); got != 80 {
		t.Errorf("TriangleCount = %d, want 80", got)
	}
	if got := m.VertexCount(); got != 42 {
		t.Errorf("VertexCount = %d, want 42", got)
	}
}

func TestGenerateClosedCapSeamDropsAtSix(t *testing.T) {
	p := validParams()
	p.Variant = dome.PentagonRingClosedCap{}
	p.Frequency = 6
	m, err := dome.Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// The distance rule must fire at frequency 6: the bottom-row triangles
	// hugging the rim corners exceed the clearance.
	if got, all := m.TriangleCount(), 20*36; got >= all {
		t.Errorf("TriangleCount = %d, want fewer than %d after seam drops", got, all)
	}
	// And everything retained respects the clearance where the rule applies:
	// no retained triangle at the rim has a centroid beyond 0.95*radius.
	for i := 0; i < m.TriangleCount(); i++ {
		var cx, cy, cz float64
		onRim := 0
		for j := 0; j < 3; j++ {
			vi := m.Faces[i*3+j]
			cx += float64(m.Positions[vi*3])
			cy += float64(m.Positions[vi*3+1])
			z := float64(m.Positions[vi*3+2])
			cz += z
			if z == -2 {
				onRim++
			}
		}
		cx, cy, cz = cx/3, cy/3, cz/3
		if onRim >= 2 && cz < -1.5 && math.Hypot(cx, cy) > 0.95*10+1e-4 {
			t.Errorf("triangle %d hugs the rim beyond the seam clearance", i)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	for _, variant := range dome.Variants() {
		t.Run(variant.Name(), func(t *testing.T) {
			p := validParams()
			p.Variant = variant
			p.Frequency = 4

			a, err := dome.Generate(p)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			b, err := dome.Generate(p)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if !reflect.DeepEqual(a, b) {
				t.Error("two generations with identical inputs differ")
			}
		})
	}
}

func TestGenerateVerticesShared(t *testing.T) {
	for _, variant := range dome.Variants() {
		for f := dome.MinFrequency; f <= dome.MaxFrequency; f++ {
			p := validParams()
			p.Variant = variant
			p.Frequency = f
			m, err := dome.Generate(p)
			if err != nil {
				t.Fatalf("%s f=%d: Generate failed: %v", variant.Name(), f, err)
			}
			if m.TriangleCount() < 2 {
				t.Fatalf("%s f=%d: produced %d triangles", variant.Name(), f, m.TriangleCount())
			}
			if m.VertexCount() >= 3*m.TriangleCount() {
				t.Errorf("%s f=%d: %d vertices for %d triangles, no sharing",
					variant.Name(), f, m.VertexCount(), m.TriangleCount())
			}
		}
	}
}

// Every output vertex is either sphere-projected to the radius or pinned
// exactly to the rim plane.
func TestGenerateProjectionInvariant(t *testing.T) {
	const radius = 10.0
	for _, variant := range dome.Variants() {
		t.Run(variant.Name(), func(t *testing.T) {
			p := validParams()
			p.Variant = variant
			p.Frequency = 5
			m, err := dome.Generate(p)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			rim, hasRim := variant.Rim(radius)
			for i := 0; i < m.VertexCount(); i++ {
				x := float64(m.Positions[i*3])
				y := float64(m.Positions[i*3+1])
				z := float64(m.Positions[i*3+2])
				if hasRim && float32(z) == float32(rim) {
					continue // rim vertices stay planar, off the sphere
				}
				if got := math.Sqrt(x*x + y*y + z*z); math.Abs(got-radius) > 1e-4 {
					t.Errorf("vertex %d at distance %v, want %v", i, got, radius)
				}
			}
		})
	}
}

func TestGenerateColorCycle(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		t.Run(fmt.Sprintf("palette-%d", size), func(t *testing.T) {
			palette := make([]string, size)
			for i := range palette {
				palette[i] = fmt.Sprintf("#%06x", i*40)
			}
			p := validParams()
			p.Palette = palette
			m, err := dome.Generate(p)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			for i, c := range m.FaceColors {
				if want := uint32(i % size); c != want {
					t.Fatalf("FaceColors[%d] = %d, want %d", i, c, want)
				}
			}
			if len(m.Palette) != size {
				t.Errorf("mesh palette has %d colors, want %d", len(m.Palette), size)
			}
		})
	}
}

func TestGenerateIcosahedron(t *testing.T) {
	p := validParams()
	p.Variant = dome.Icosahedron{}
	m, err := dome.Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if m.IsEmpty() {
		t.Fatal("mesh should not be empty")
	}
	// A hemisphere keeps strictly fewer triangles than the full sphere.
	if all := 20 * 4; m.TriangleCount() >= all {
		t.Errorf("TriangleCount = %d, want fewer than %d", m.TriangleCount(), all)
	}
	// No planar rim: every vertex is on the sphere.
	for i := 0; i < m.VertexCount(); i++ {
		x := float64(m.Positions[i*3])
		y := float64(m.Positions[i*3+1])
		z := float64(m.Positions[i*3+2])
		if got := math.Sqrt(x*x + y*y + z*z); math.Abs(got-10) > 1e-4 {
			t.Errorf("vertex %d at distance %v, want 10", i, got)
		}
		// Retained triangles have centroids at or above the cut, so no
		// vertex sinks more than a fraction of the radius below it.
		if z < -3.5 {
			t.Errorf("vertex %d far below the equatorial cut: z = %v", i, z)
		}
	}
}
