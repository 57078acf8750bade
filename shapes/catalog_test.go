package shapes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chuongmep/adapy/mesh"
)

func TestDefaultCatalogCoversEveryType(t *testing.T) {
	c := Default()
	assert.Equal(t, mesh.ElementTypes(), c.Types())

	for _, et := range mesh.ElementTypes() {
		s, err := c.Lookup(et)
		require.NoError(t, err, et.String())
		assert.Equal(t, et, s.Type)
		nn := et.NumNodes()
		for _, e := range s.Edges {
			assert.True(t, e[0] >= 0 && e[0] < nn && e[1] >= 0 && e[1] < nn, "%s edge %v", et, e)
		}
		for _, f := range s.Faces {
			assert.GreaterOrEqual(t, len(f), 3, "%s face %v", et, f)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup(mesh.Unknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownElementType))
	assert.Contains(t, err.Error(), "Unknown")

	_, err = Default().Lookup(mesh.ElementType(77))
	var ue *UnknownElementTypeError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, mesh.ElementType(77), ue.Type)
	assert.Contains(t, err.Error(), "ElementType(77)")
}

func TestCategories(t *testing.T) {
	c := Default()
	assert.True(t, c.IsBeam(mesh.Line))
	assert.True(t, c.IsBeam(mesh.Line3))
	assert.False(t, c.IsBeam(mesh.Triangle))
	assert.False(t, c.IsBeam(mesh.Hex))
	assert.False(t, c.IsBeam(mesh.Unknown))

	for et, want := range map[mesh.ElementType]Category{
		mesh.Point:     Other,
		mesh.Line:      Beam,
		mesh.Quad8:     Shell,
		mesh.Pyramid13: Solid,
	} {
		s, err := c.Lookup(et)
		require.NoError(t, err)
		assert.Equal(t, want, s.Category, et.String())
	}
	assert.Equal(t, "Shell", Shell.String())
}

func TestLinearShapes(t *testing.T) {
	c := Default()

	point, _ := c.Lookup(mesh.Point)
	assert.Empty(t, point.Edges)
	assert.Empty(t, point.Faces)

	line, _ := c.Lookup(mesh.Line)
	assert.Equal(t, [][2]int{{0, 1}}, line.Edges)
	assert.Empty(t, line.Faces)

	tri, _ := c.Lookup(mesh.Triangle)
	assert.Len(t, tri.Edges, 3)
	assert.Equal(t, [][]int{{0, 1, 2}}, tri.Faces)

	tet, _ := c.Lookup(mesh.Tet)
	assert.Len(t, tet.Edges, 6)
	assert.Len(t, tet.Faces, 4)

	hex, _ := c.Lookup(mesh.Hex)
	assert.Len(t, hex.Edges, 12)
	assert.Len(t, hex.Faces, 6)
	for _, f := range hex.Faces {
		assert.Len(t, f, 4)
	}

	prism, _ := c.Lookup(mesh.Prism)
	assert.Len(t, prism.Edges, 9)
	assert.Len(t, prism.Faces, 5)

	pyr, _ := c.Lookup(mesh.Pyramid)
	assert.Len(t, pyr.Edges, 8)
	assert.Len(t, pyr.Faces, 5)
}

func TestQuadraticShapes(t *testing.T) {
	c := Default()

	// A 3-node line renders as two segments through its middle node
	line3, _ := c.Lookup(mesh.Line3)
	assert.Equal(t, [][2]int{{0, 2}, {2, 1}}, line3.Edges)

	tri6, _ := c.Lookup(mesh.Triangle6)
	assert.Equal(t, [][2]int{{0, 3}, {3, 1}, {1, 4}, {4, 2}, {2, 5}, {5, 0}}, tri6.Edges)
	assert.Equal(t, [][]int{{0, 3, 1, 4, 2, 5}}, tri6.Faces)

	tri10, _ := c.Lookup(mesh.Triangle10)
	assert.Len(t, tri10.Edges, 9)
	assert.Equal(t, [][]int{{0, 3, 4, 1, 5, 6, 2, 7, 8}}, tri10.Faces)

	tet10, _ := c.Lookup(mesh.Tet10)
	assert.Len(t, tet10.Edges, 12)
	require.Len(t, tet10.Faces, 4)
	// Face {0,2,1} walks edge 2-0 backwards
	assert.Equal(t, []int{0, 6, 2, 5, 1, 4}, tet10.Faces[0])

	hex20, _ := c.Lookup(mesh.Hex20)
	assert.Len(t, hex20.Edges, 24)
	for _, f := range hex20.Faces {
		assert.Len(t, f, 8)
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(ElementShape{
		Type:     mesh.Triangle,
		Category: Shell,
		Edges:    [][2]int{{0, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, []mesh.ElementType{mesh.Triangle}, c.Types())
	_, err = c.Lookup(mesh.Quad)
	assert.True(t, errors.Is(err, ErrUnknownElementType))

	_, err = NewCatalog(ElementShape{Type: mesh.Line, Edges: [][2]int{{0, 2}}})
	assert.Error(t, err, "index outside a 2-node line")

	_, err = NewCatalog(ElementShape{Type: mesh.Quad, Faces: [][]int{{0, 1}}})
	assert.Error(t, err, "face with two nodes")

	_, err = NewCatalog(ElementShape{Type: mesh.Line}, ElementShape{Type: mesh.Line})
	assert.Error(t, err, "duplicate entry")
}
