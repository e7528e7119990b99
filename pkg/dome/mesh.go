package dome

import (
	"github.com/chazu/domekit/pkg/geom"
)

// Mesh is the renderable dome mesh. All arrays are flat: Positions has
// 3 floats per vertex (x,y,z), Faces has 3 uint32s per triangle, Edges has
// 2 uint32s per wireframe segment (3 segments per triangle). FaceColors
// holds one palette index per triangle, parallel to Faces.
type Mesh struct {
	Positions  []float32 `json:"positions"`  // [x0,y0,z0, x1,y1,z1, ...]
	Faces      []uint32  `json:"faces"`      // [i0,i1,i2, ...] triangles
	FaceColors []uint32  `json:"faceColors"` // palette index per triangle
	Edges      []uint32  `json:"edges"`      // [a0,b0, a1,b1, ...] segments
	Palette    []string  `json:"palette"`    // colors referenced by FaceColors
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces) / 3
}

// EdgeCount returns the number of wireframe segments.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges) / 2
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// meshBuilder packs colored triangles into a Mesh. Canonicalization already
// guarantees shared vertex identity, so assembly only assigns each distinct
// *Vertex a stable first-seen index and emits faces and edges against it.
type meshBuilder struct {
	index map[*geom.Vertex]uint32
	mesh  *Mesh
}

func newMeshBuilder(palette []string) *meshBuilder {
	colors := make([]string, len(palette))
	copy(colors, palette)
	return &meshBuilder{
		index: make(map[*geom.Vertex]uint32),
		mesh:  &Mesh{Palette: colors},
	}
}

func (b *meshBuilder) add(t geom.Triangle, color int) {
	ia := b.indexOf(t.A)
	ib := b.indexOf(t.B)
	ic := b.indexOf(t.C)

	b.mesh.Faces = append(b.mesh.Faces, ia, ib, ic)
	b.mesh.FaceColors = append(b.mesh.FaceColors, uint32(color))
	b.mesh.Edges = append(b.mesh.Edges, ia, ib, ib, ic, ic, ia)
}

func (b *meshBuilder) indexOf(v *geom.Vertex) uint32 {
	if i, ok := b.index[v]; ok {
		return i
	}
	i := uint32(len(b.index))
	b.index[v] = i
	b.mesh.Positions = append(b.mesh.Positions,
		float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z))
	return i
}
