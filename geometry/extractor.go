// Package geometry turns a mesh into flat, renderer-agnostic primitives:
// a vertex array, an edge list and a face list indexing into it.
package geometry

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chuongmep/adapy/mesh"
	"github.com/chuongmep/adapy/shapes"
)

// ShapeLookup resolves element types to local topology.
type ShapeLookup interface {
	Lookup(t mesh.ElementType) (*shapes.ElementShape, error)
}

var beamToShellOnce sync.Once

type Edge [2]int

type Face []int

// Extractor walks meshes with an explicitly supplied catalog.
type Extractor struct {
	catalog ShapeLookup
}

func NewExtractor(catalog ShapeLookup) *Extractor {
	return &Extractor{catalog: catalog}
}

// Vertices returns one row per node in mesh order; row i is node i's
// position and i is the vertex id used by edges and faces.
func (x *Extractor) Vertices(m *mesh.Mesh) []mgl32.Vec3 {
	return Vertices(m)
}

// Vertices is the catalog independent part of extraction, shared with
// callers that only need rest positions.
func Vertices(m *mesh.Mesh) []mgl32.Vec3 {
	V := make([]mgl32.Vec3, len(m.Nodes))
	for i, n := range m.Nodes {
		V[i] = mgl32.Vec3{float32(n.Pos[0]), float32(n.Pos[1]), float32(n.Pos[2])}
	}
	return V
}

// Edges emits every element-local edge definition as a pair of vertex
// indices. Edges shared by adjacent elements are emitted once per element.
func (x *Extractor) Edges(m *mesh.Mesh) ([]Edge, error) {
	shps, EToV, err := x.resolve(m)
	if err != nil {
		return nil, err
	}
	var nedges int
	for _, s := range shps {
		nedges += len(s.Edges)
	}
	edges := make([]Edge, 0, nedges)
	for k, s := range shps {
		verts := EToV[k]
		for _, e := range s.Edges {
			edges = append(edges, Edge{verts[e[0]], verts[e[1]]})
		}
	}
	return edges, nil
}

// Faces emits the face polygons of every non-beam element. Beam elements
// contribute nothing; shell synthesis for them is not implemented, so
// convertBeamToShell only logs a notice.
func (x *Extractor) Faces(m *mesh.Mesh, convertBeamToShell bool) ([]Face, error) {
	if convertBeamToShell {
		beamToShellOnce.Do(func() {
			log.Println("beam to shell conversion is not implemented, beams are skipped")
		})
	}
	shps, EToV, err := x.resolve(m)
	if err != nil {
		return nil, err
	}
	faces := make([]Face, 0, len(m.Elements))
	for k, s := range shps {
		if s.IsBeam() {
			continue
		}
		verts := EToV[k]
		for _, f := range s.Faces {
			face := make(Face, len(f))
			for i, p := range f {
				face[i] = verts[p]
			}
			faces = append(faces, face)
		}
	}
	return faces, nil
}

// ToViewGeometry composes vertices, edges and faces under the mesh's name.
func (x *Extractor) ToViewGeometry(m *mesh.Mesh) (*ViewGeometry, error) {
	edges, err := x.Edges(m)
	if err != nil {
		return nil, err
	}
	faces, err := x.Faces(m, false)
	if err != nil {
		return nil, err
	}
	return &ViewGeometry{
		Name:     m.Name,
		Vertices: x.Vertices(m),
		Edges:    edges,
		Faces:    faces,
	}, nil
}

// resolve looks up every element's shape and vertex indices up front so
// that extraction either fully succeeds or returns nothing.
func (x *Extractor) resolve(m *mesh.Mesh) (shps []*shapes.ElementShape, EToV [][]int, err error) {
	shps = make([]*shapes.ElementShape, len(m.Elements))
	for k, el := range m.Elements {
		if shps[k], err = x.catalog.Lookup(el.Type); err != nil {
			return nil, nil, err
		}
	}
	if EToV, err = m.Connectivity(); err != nil {
		return nil, nil, err
	}
	return
}
