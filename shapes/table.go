package shapes

import "github.com/chuongmep/adapy/mesh"

type cornerTopology struct {
	edges [][2]int
	faces [][]int
}

// Corner topologies in Gmsh ordering. Edge order matters: midside node
// tables below are listed per edge in this order.
var corners = map[mesh.ElementType]cornerTopology{
	mesh.Point: {},
	mesh.Line: {
		edges: [][2]int{{0, 1}},
	},
	mesh.Triangle: {
		edges: [][2]int{{0, 1}, {1, 2}, {2, 0}},
		faces: [][]int{{0, 1, 2}},
	},
	mesh.Quad: {
		edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		faces: [][]int{{0, 1, 2, 3}},
	},
	mesh.Tet: {
		edges: [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {2, 3}, {1, 3}},
		faces: [][]int{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	},
	mesh.Hex: {
		edges: [][2]int{
			{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
			{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
		},
		faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	},
	mesh.Prism: {
		edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {3, 5}, {4, 5},
		},
		faces: [][]int{
			{0, 2, 1}, // bottom tri
			{3, 4, 5}, // top tri
			{0, 1, 4, 3},
			{1, 2, 5, 4},
			{2, 0, 3, 5},
		},
	},
	mesh.Pyramid: {
		edges: [][2]int{
			{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
		},
		faces: [][]int{
			{0, 3, 2, 1}, // base quad
			{0, 1, 4},
			{1, 2, 4},
			{2, 3, 4},
			{3, 0, 4},
		},
	},
}

// midside lists, per corner edge, the nodes lying on that edge ordered from
// the edge's first corner to its second.
var midside = map[mesh.ElementType][][]int{
	mesh.Line3:      {{2}},
	mesh.Triangle6:  {{3}, {4}, {5}},
	mesh.Triangle9:  {{3, 4}, {5, 6}, {7, 8}},
	mesh.Triangle10: {{3, 4}, {5, 6}, {7, 8}},
	mesh.Quad8:      {{4}, {5}, {6}, {7}},
	mesh.Quad9:      {{4}, {5}, {6}, {7}},
	mesh.Tet10:      sequential(4, 6),
	mesh.Hex20:      sequential(8, 12),
	mesh.Hex27:      sequential(8, 12),
	mesh.Prism15:    sequential(6, 9),
	mesh.Prism18:    sequential(6, 9),
	mesh.Pyramid13:  sequential(5, 8),
	mesh.Pyramid14:  sequential(5, 8),
}

func sequential(first, nedges int) (mids [][]int) {
	mids = make([][]int, nedges)
	for i := range mids {
		mids[i] = []int{first + i}
	}
	return
}

// buildShape expands the corner topology of t. Higher order types split each
// corner edge through its midside nodes and walk them around face perimeters.
func buildShape(t mesh.ElementType) ElementShape {
	ct := corners[t.CornerType()]
	s := ElementShape{Type: t, Category: CategoryOf(t)}
	mids, curved := midside[t]
	if !curved {
		s.Edges = append(s.Edges, ct.edges...)
		for _, f := range ct.faces {
			s.Faces = append(s.Faces, append([]int(nil), f...))
		}
		return s
	}
	for i, e := range ct.edges {
		chain := append(append([]int{e[0]}, mids[i]...), e[1])
		for j := 0; j+1 < len(chain); j++ {
			s.Edges = append(s.Edges, [2]int{chain[j], chain[j+1]})
		}
	}
	for _, f := range ct.faces {
		var poly []int
		for j, a := range f {
			b := f[(j+1)%len(f)]
			poly = append(poly, a)
			poly = append(poly, edgeMidsides(ct.edges, mids, a, b)...)
		}
		s.Faces = append(s.Faces, poly)
	}
	return s
}

func edgeMidsides(edges [][2]int, mids [][]int, a, b int) []int {
	for i, e := range edges {
		switch {
		case e[0] == a && e[1] == b:
			return mids[i]
		case e[0] == b && e[1] == a:
			rev := make([]int, len(mids[i]))
			for j, m := range mids[i] {
				rev[len(rev)-1-j] = m
			}
			return rev
		}
	}
	return nil
}
