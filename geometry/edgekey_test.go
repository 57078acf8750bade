package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeKey(t *testing.T) {
	k1 := NewEdgeKey(Edge{4, 0})
	k2 := NewEdgeKey(Edge{0, 4})
	assert.Equal(t, k1, k2)
	assert.Equal(t, Edge{0, 4}, k1.Vertices(false))
	assert.Equal(t, Edge{4, 0}, k1.Vertices(true))

	big := NewEdgeKey(Edge{1 << 31, 7})
	assert.Equal(t, Edge{7, 1 << 31}, big.Vertices(false))

	assert.Panics(t, func() { NewEdgeKey(Edge{-1, 2}) })
}

func TestUniqueEdges(t *testing.T) {
	edges := []Edge{{0, 1}, {1, 2}, {1, 0}, {2, 0}, {2, 1}, {0, 2}}
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 0}}, UniqueEdges(edges))
	assert.Empty(t, UniqueEdges(nil))
}

func TestAdjacency(t *testing.T) {
	// Square 0-1-2-3 with diagonal 0-2 listed twice and a self loop
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {2, 0}, {3, 3}}
	adj := Adjacency(4, edges)

	r, c := adj.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 2.0, adj.At(0, 2))
	assert.Equal(t, 2.0, adj.At(2, 0))
	assert.Equal(t, 1.0, adj.At(0, 1))
	assert.Equal(t, 0.0, adj.At(1, 3))
	assert.Equal(t, 0.0, adj.At(3, 3))

	assert.Equal(t, []int{3, 2, 3, 2}, Valence(adj))
}
