package mesh

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Node is a mesh point. IDs are positive and 1-based in the source domain.
type Node struct {
	ID  int
	Pos [3]float64
}

// Element references its nodes by id; the order of Nodes defines the local
// connectivity used by the shape catalog.
type Element struct {
	ID    int
	Type  ElementType
	Nodes []int
}

// Mesh owns an ordered node collection (unique ids) and an ordered element
// collection. A node's position in Nodes is its vertex index.
type Mesh struct {
	Name     string
	Nodes    []Node
	Elements []Element

	nodeIndex map[int]int // node id -> position in Nodes
	dense     bool        // node i has id i+1 for every i
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		nodeIndex: make(map[int]int),
		dense:     true,
	}
}

// AddNode appends a node. Duplicate ids are rejected.
func (m *Mesh) AddNode(id int, coords []float64) error {
	if id <= 0 {
		return fmt.Errorf("node id %d: ids must be positive", id)
	}
	if m.stale() {
		if err := m.Reindex(); err != nil {
			return err
		}
	}
	if _, exists := m.nodeIndex[id]; exists {
		return fmt.Errorf("%w %d", ErrDuplicateNodeID, id)
	}
	var n Node
	n.ID = id
	copy(n.Pos[:], coords)
	idx := len(m.Nodes)
	m.Nodes = append(m.Nodes, n)
	m.nodeIndex[id] = idx
	if id != idx+1 {
		m.dense = false
	}
	return nil
}

// AddElement appends an element after checking its node count against the
// element type. Node references are not resolved here, see Validate.
func (m *Mesh) AddElement(id int, etype ElementType, nodeIDs []int) error {
	if want := etype.NumNodes(); want != 0 && len(nodeIDs) != want {
		return fmt.Errorf("element %d: %s expects %d nodes, got %d",
			id, etype, want, len(nodeIDs))
	}
	nodes := make([]int, len(nodeIDs))
	copy(nodes, nodeIDs)
	m.Elements = append(m.Elements, Element{ID: id, Type: etype, Nodes: nodes})
	return nil
}

func (m *Mesh) NumNodes() int    { return len(m.Nodes) }
func (m *Mesh) NumElements() int { return len(m.Elements) }

// Validate checks that every element node reference resolves to a node.
func (m *Mesh) Validate() error {
	for _, el := range m.Elements {
		for _, id := range el.Nodes {
			if _, err := m.IndexOf(id); err != nil {
				return elementError(el.ID, err)
			}
		}
	}
	return nil
}

// Connectivity resolves every element's node ids to vertex indices in one
// pass. It fails on the first dangling reference.
func (m *Mesh) Connectivity() (EToV [][]int, err error) {
	EToV = make([][]int, len(m.Elements))
	for k, el := range m.Elements {
		row := make([]int, len(el.Nodes))
		for i, id := range el.Nodes {
			if row[i], err = m.IndexOf(id); err != nil {
				return nil, elementError(el.ID, err)
			}
		}
		EToV[k] = row
	}
	return
}

// elementError attributes a failed node lookup to the element making it.
func elementError(elementID int, err error) error {
	var de *DanglingNodeError
	if errors.As(err, &de) {
		return &DanglingNodeError{ElementID: elementID, NodeID: de.NodeID}
	}
	return err
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "Mesh %q:\n", m.Name)
	fmt.Fprintf(w, "  Nodes: %d\n", len(m.Nodes))
	fmt.Fprintf(w, "  Elements: %d\n", len(m.Elements))

	typeCounts := make(map[ElementType]int)
	for _, el := range m.Elements {
		typeCounts[el.Type]++
	}
	types := make([]ElementType, 0, len(typeCounts))
	for t := range typeCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Fprintf(w, "  Element types:\n")
	for _, t := range types {
		fmt.Fprintf(w, "    %s: %d\n", t, typeCounts[t])
	}
}
