package readers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chuongmep/adapy/mesh"
)

// createTempMeshFile writes content under a temporary directory
func createTempMeshFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func gmshTypeOf(t *testing.T, etype mesh.ElementType) int {
	t.Helper()
	for g, e := range gmshElementTypes {
		if e == etype {
			return g
		}
	}
	t.Fatalf("no Gmsh type for %s", etype)
	return 0
}

// twoTetMesh is two tetrahedra sharing the face 2-3-4
func twoTetMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh("two_tet")
	coords := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1},
	}
	for i, c := range coords {
		if err := m.AddNode(i+1, c); err != nil {
			t.Fatal(err)
		}
	}
	for i, nodes := range [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}} {
		if err := m.AddElement(i+1, mesh.Tet, nodes); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

// mixedMesh holds a beam, a shell and a solid
func mixedMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := twoTetMesh(t)
	m.Name = "mixed"
	if err := m.AddElement(3, mesh.Line, []int{1, 5}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddElement(4, mesh.Triangle, []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	return m
}

// Gmsh22TestBuilder emits Gmsh 2.2 text for a mesh
type Gmsh22TestBuilder struct {
	t *testing.T
}

func NewGmsh22TestBuilder(t *testing.T) *Gmsh22TestBuilder {
	return &Gmsh22TestBuilder{t: t}
}

func (b *Gmsh22TestBuilder) BuildFromMesh(m *mesh.Mesh) string {
	var lines []string
	lines = append(lines, "$MeshFormat", "2.2 0 8", "$EndMeshFormat")

	lines = append(lines, "$Nodes", fmt.Sprintf("%d", m.NumNodes()))
	for _, n := range m.Nodes {
		lines = append(lines, fmt.Sprintf("%d %f %f %f", n.ID, n.Pos[0], n.Pos[1], n.Pos[2]))
	}
	lines = append(lines, "$EndNodes")

	lines = append(lines, "$Elements", fmt.Sprintf("%d", m.NumElements()))
	for _, el := range m.Elements {
		// Two tags: physical and geometric
		fields := []string{
			fmt.Sprintf("%d", el.ID),
			fmt.Sprintf("%d", gmshTypeOf(b.t, el.Type)),
			"2", "1", "1",
		}
		for _, id := range el.Nodes {
			fields = append(fields, fmt.Sprintf("%d", id))
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	lines = append(lines, "$EndElements")
	return strings.Join(lines, "\n")
}

// Gmsh4TestBuilder emits Gmsh 4.1 text with one entity block per element
// type
type Gmsh4TestBuilder struct {
	t *testing.T
}

func NewGmsh4TestBuilder(t *testing.T) *Gmsh4TestBuilder {
	return &Gmsh4TestBuilder{t: t}
}

func (b *Gmsh4TestBuilder) BuildFromMesh(m *mesh.Mesh) string {
	var lines []string
	lines = append(lines, "$MeshFormat", "4.1 0 8", "$EndMeshFormat")
	lines = append(lines, "$Entities", "0 0 0 1", "1 0 0 0 1 1 1 0 0", "$EndEntities")

	minTag, maxTag := m.Nodes[0].ID, m.Nodes[0].ID
	for _, n := range m.Nodes {
		if n.ID < minTag {
			minTag = n.ID
		}
		if n.ID > maxTag {
			maxTag = n.ID
		}
	}
	lines = append(lines, "$Nodes",
		fmt.Sprintf("1 %d %d %d", m.NumNodes(), minTag, maxTag),
		fmt.Sprintf("3 1 0 %d", m.NumNodes()))
	for _, n := range m.Nodes {
		lines = append(lines, fmt.Sprintf("%d", n.ID))
	}
	for _, n := range m.Nodes {
		lines = append(lines, fmt.Sprintf("%f %f %f", n.Pos[0], n.Pos[1], n.Pos[2]))
	}
	lines = append(lines, "$EndNodes")

	var (
		order  []mesh.ElementType
		blocks = make(map[mesh.ElementType][]mesh.Element)
	)
	for _, el := range m.Elements {
		if _, seen := blocks[el.Type]; !seen {
			order = append(order, el.Type)
		}
		blocks[el.Type] = append(blocks[el.Type], el)
	}
	lines = append(lines, "$Elements",
		fmt.Sprintf("%d %d %d %d", len(order), m.NumElements(), 1, m.NumElements()))
	for _, etype := range order {
		els := blocks[etype]
		lines = append(lines, fmt.Sprintf("%d 1 %d %d", etype.Dimension(), gmshTypeOf(b.t, etype), len(els)))
		for _, el := range els {
			fields := []string{fmt.Sprintf("%d", el.ID)}
			for _, id := range el.Nodes {
				fields = append(fields, fmt.Sprintf("%d", id))
			}
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	lines = append(lines, "$EndElements")
	return strings.Join(lines, "\n")
}
