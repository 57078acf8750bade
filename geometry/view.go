package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewGeometry is the renderer contract. Artifact names derive from Name.
type ViewGeometry struct {
	Name     string       `json:"name"`
	Vertices []mgl32.Vec3 `json:"vertices"`
	Edges    []Edge       `json:"edges"`
	Faces    []Face       `json:"faces"`
}

func (vg *ViewGeometry) VerticesName() string { return vg.Name + "_vertices" }
func (vg *ViewGeometry) EdgesName() string    { return vg.Name + "_edges" }
func (vg *ViewGeometry) FacesName() string    { return vg.Name + "_faces" }

// Validate checks every index against the vertex count and face arity.
func (vg *ViewGeometry) Validate() error {
	nv := len(vg.Vertices)
	for i, e := range vg.Edges {
		if e[0] < 0 || e[0] >= nv || e[1] < 0 || e[1] >= nv {
			return fmt.Errorf("%s: edge %d %v out of range [0,%d)", vg.EdgesName(), i, e, nv)
		}
	}
	for i, f := range vg.Faces {
		if len(f) < 3 {
			return fmt.Errorf("%s: face %d has %d vertices", vg.FacesName(), i, len(f))
		}
		for _, v := range f {
			if v < 0 || v >= nv {
				return fmt.Errorf("%s: face %d %v out of range [0,%d)", vg.FacesName(), i, f, nv)
			}
		}
	}
	return nil
}

// FlatVertices packs vertices as [x0,y0,z0, x1,y1,z1, ...].
func (vg *ViewGeometry) FlatVertices() []float32 {
	flat := make([]float32, 0, 3*len(vg.Vertices))
	for _, v := range vg.Vertices {
		flat = append(flat, v[0], v[1], v[2])
	}
	return flat
}

// FlatEdges packs edges as line-list indices.
func (vg *ViewGeometry) FlatEdges() []uint32 {
	flat := make([]uint32, 0, 2*len(vg.Edges))
	for _, e := range vg.Edges {
		flat = append(flat, uint32(e[0]), uint32(e[1]))
	}
	return flat
}

// FlatFaces fan-triangulates each face polygon into triangle-list indices.
func (vg *ViewGeometry) FlatFaces() []uint32 {
	var flat []uint32
	for _, f := range vg.Faces {
		for _, tri := range Triangulate(f) {
			flat = append(flat, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
		}
	}
	return flat
}

// Triangulate fans a convex polygon around its first vertex.
func Triangulate(f Face) [][3]int {
	if len(f) < 3 {
		return nil
	}
	tris := make([][3]int, 0, len(f)-2)
	for i := 1; i+1 < len(f); i++ {
		tris = append(tris, [3]int{f[0], f[i], f[i+1]})
	}
	return tris
}
