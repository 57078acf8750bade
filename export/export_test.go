package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chuongmep/adapy/geometry"
	"github.com/chuongmep/adapy/results"
)

// squareGeometry is a unit quad with its four edges and a dangling beam
func squareGeometry() *geometry.ViewGeometry {
	return &geometry.ViewGeometry{
		Name:     "square",
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {2, 2, 0}},
		Edges:    []geometry.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}},
		Faces:    []geometry.Face{{0, 1, 2, 3}},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": JSON, "JSON": JSON, ".yaml": YAML, "yml": YAML, "stl": STL, "dxf": DXF,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("obj")
	assert.Error(t, err)
	assert.Equal(t, ".stl", STL.Ext())
	assert.Equal(t, "Format(9)", Format(9).String())
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(squareGeometry())
	assert.Equal(t, "square_vertices", doc.Vertices)
	assert.Equal(t, "square_edges", doc.Edges)
	assert.Equal(t, "square_faces", doc.Faces)
	require.NotNil(t, doc.BoundingBox)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, doc.BoundingBox.Center)

	empty := NewDocument(&geometry.ViewGeometry{Name: "empty"})
	assert.Nil(t, empty.BoundingBox)
}

func TestWriteJSON(t *testing.T) {
	doc := NewDocument(squareGeometry())
	doc.Modes = []results.ModalResult{{Name: "m1", Mode: 1, Frequency: 3.5}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "square_faces", parsed["facesName"])
	geom := parsed["geometry"].(map[string]interface{})
	assert.Len(t, geom["vertices"], 5)
	assert.Len(t, geom["edges"], 5)
	assert.Len(t, parsed["modes"], 1)
	_, hasFrames := parsed["frames"]
	assert.False(t, hasFrames)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewDocument(squareGeometry())))
	assert.True(t, strings.Contains(buf.String(), "edgesName: square_edges"))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, squareGeometry().Faces, doc.Geometry.Faces)
}

func TestWriteSTL(t *testing.T) {
	vg := squareGeometry()
	tris := Triangles(vg)
	require.Len(t, tris, 2)
	assert.Equal(t, 1.0, tris[0][1].X)
	assert.Equal(t, 1.0, tris[1][2].Y)

	path := filepath.Join(t.TempDir(), "square.stl")
	require.NoError(t, WriteSTL(path, vg))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84))

	// Beams alone have nothing to tessellate
	vg.Faces = nil
	assert.Error(t, WriteSTL(filepath.Join(t.TempDir(), "beams.stl"), vg))
}

func TestWriteDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.dxf")
	require.NoError(t, WriteDXF(path, squareGeometry()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.GreaterOrEqual(t, strings.Count(out, "LINE"), 5)
	assert.Contains(t, out, "EOF")

	bad := squareGeometry()
	bad.Edges = append(bad.Edges, geometry.Edge{0, 9})
	assert.Error(t, WriteDXF(filepath.Join(t.TempDir(), "bad.dxf"), bad))
}
