package geometry

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
)

/*
EdgeKey stores an edge's vertices so that both directions compare equal. An
edge between vertices [4] and [0] is always stored as [0,4].
*/
type EdgeKey uint64

func NewEdgeKey(e Edge) EdgeKey {
	for _, v := range e {
		if v < 0 || v > math.MaxUint32 {
			panic(fmt.Errorf("unable to pack edge %v into a uint64", e))
		}
	}
	i1, i2 := e[0], e[1]
	if i1 > i2 {
		i1, i2 = i2, i1
	}
	return EdgeKey(uint64(i1) + uint64(i2)<<32)
}

// Vertices returns the packed vertices, low index first unless rev is set.
func (ek EdgeKey) Vertices(rev bool) (e Edge) {
	e[1] = int(ek >> 32)
	e[0] = int(ek & math.MaxUint32)
	if rev {
		e[0], e[1] = e[1], e[0]
	}
	return
}

// UniqueEdges drops repeated edges regardless of direction, keeping the
// first occurrence and its orientation.
func UniqueEdges(edges []Edge) []Edge {
	seen := make(map[EdgeKey]struct{}, len(edges))
	unique := make([]Edge, 0, len(edges))
	for _, e := range edges {
		key := NewEdgeKey(e)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

// Adjacency builds the symmetric vertex adjacency matrix of an edge list.
// Entries count how many element edges join the two vertices.
func Adjacency(numVertices int, edges []Edge) *sparse.CSR {
	dok := sparse.NewDOK(numVertices, numVertices)
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		dok.Set(e[0], e[1], dok.At(e[0], e[1])+1)
		dok.Set(e[1], e[0], dok.At(e[1], e[0])+1)
	}
	return dok.ToCSR()
}

// Valence returns the number of distinct neighbours of every vertex.
func Valence(adj *sparse.CSR) []int {
	r, _ := adj.Dims()
	valence := make([]int, r)
	adj.DoNonZero(func(i, j int, v float64) {
		valence[i]++
	})
	return valence
}
