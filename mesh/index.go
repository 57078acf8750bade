package mesh

import "fmt"

// IDToIndex converts a 1-based node id to its zero-based vertex index. It is
// the only place the offset is applied.
func IDToIndex(id int) int {
	return id - 1
}

// IndexOf returns the vertex index of a node id. Meshes whose ids run 1..N in
// node order use IDToIndex directly; any other numbering goes through the id
// map. The index is rebuilt from Nodes whenever a lookup does not land on a
// node carrying the requested id, so meshes assembled through the exported
// fields resolve the same as those built with AddNode.
func (m *Mesh) IndexOf(id int) (int, error) {
	if idx, ok := m.lookup(id); ok {
		return idx, nil
	}
	if err := m.Reindex(); err != nil {
		return -1, err
	}
	if idx, ok := m.lookup(id); ok {
		return idx, nil
	}
	return -1, &DanglingNodeError{ElementID: -1, NodeID: id}
}

// lookup consults the current index and confirms the hit against Nodes.
func (m *Mesh) lookup(id int) (int, bool) {
	idx, ok := -1, false
	if m.dense {
		idx, ok = IDToIndex(id), true
	} else if m.nodeIndex != nil {
		idx, ok = m.nodeIndex[id]
	}
	if !ok || idx < 0 || idx >= len(m.Nodes) || m.Nodes[idx].ID != id {
		return -1, false
	}
	return idx, true
}

// stale reports whether the index no longer covers Nodes.
func (m *Mesh) stale() bool {
	return m.nodeIndex == nil || len(m.nodeIndex) != len(m.Nodes)
}

// Reindex rebuilds the id map from Nodes.
func (m *Mesh) Reindex() error {
	m.nodeIndex = make(map[int]int, len(m.Nodes))
	m.dense = true
	for i, n := range m.Nodes {
		if _, exists := m.nodeIndex[n.ID]; exists {
			m.nodeIndex, m.dense = nil, false
			return fmt.Errorf("%w %d", ErrDuplicateNodeID, n.ID)
		}
		m.nodeIndex[n.ID] = i
		if n.ID != i+1 {
			m.dense = false
		}
	}
	return nil
}
