package results

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chuongmep/adapy/mesh"
)

type medCellType struct {
	etype mesh.ElementType
	// perm maps Gmsh local position i to MED local position perm[i]; nil
	// when both orderings agree.
	perm []int
}

// medCellTypes translates MED cell tags into element types.
var medCellTypes = map[string]medCellType{
	"PO1": {etype: mesh.Point},
	"SE2": {etype: mesh.Line},
	"SE3": {etype: mesh.Line3},
	"TR3": {etype: mesh.Triangle},
	"TR6": {etype: mesh.Triangle6},
	"QU4": {etype: mesh.Quad},
	"QU8": {etype: mesh.Quad8},
	"QU9": {etype: mesh.Quad9},
	"TE4": {etype: mesh.Tet},
	"T10": {etype: mesh.Tet10, perm: []int{0, 1, 2, 3, 4, 5, 6, 7, 9, 8}},
	"PY5": {etype: mesh.Pyramid},
	"P13": {etype: mesh.Pyramid13, perm: []int{0, 1, 2, 3, 4, 5, 8, 9, 6, 10, 7, 11, 12}},
	"PE6": {etype: mesh.Prism},
	"P15": {etype: mesh.Prism15, perm: []int{0, 1, 2, 3, 4, 5, 6, 8, 12, 7, 13, 14, 9, 11, 10}},
	"HE8": {etype: mesh.Hex},
	"H20": {etype: mesh.Hex20, perm: []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 16, 9, 17, 10, 18, 19, 12, 15, 13, 14}},
}

// ReadMesh decodes the MED mesh stored in c. An empty meshName selects the
// first mesh in the container; the result is named after it.
func ReadMesh(c Group, meshName string) (*mesh.Mesh, error) {
	meshes, err := c.Group(MeshGroup)
	if err != nil {
		return nil, fmt.Errorf("no mesh in container: %w", err)
	}
	if meshName == "" {
		names, err := meshes.Members()
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("no mesh in container: group %q is empty", MeshGroup)
		}
		meshName = names[0]
	}
	mg, err := meshes.Group(meshName)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", meshName, err)
	}
	dim := int64(3)
	if esp, err := mg.IntAttr(SpaceDimensionAttr); err == nil {
		dim = esp
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("mesh %q: unsupported space dimension %d", meshName, dim)
	}
	steps, err := mg.Members()
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("mesh %q has no computation step", meshName)
	}
	step, err := mg.Group(steps[0])
	if err != nil {
		return nil, err
	}

	msh := mesh.NewMesh(strings.TrimSpace(meshName))
	nodeIDs, err := readMEDNodes(step, msh, int(dim))
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", meshName, err)
	}
	if err = readMEDCells(step, msh, nodeIDs); err != nil {
		return nil, fmt.Errorf("mesh %q: %w", meshName, err)
	}
	return msh, nil
}

// readMEDNodes reads the non-interlaced coordinate block (all x, then all y,
// then all z) and returns node ids by position.
func readMEDNodes(step Group, msh *mesh.Mesh, dim int) ([]int, error) {
	coo, err := step.Float64s(CoordinatesPath)
	if err != nil {
		return nil, err
	}
	if len(coo)%dim != 0 {
		return nil, fmt.Errorf("%d coordinates do not split into dimension %d", len(coo), dim)
	}
	nn := len(coo) / dim
	ids := make([]int, nn)
	nums, err := step.Int64s(NodeNumbersPath)
	switch {
	case err == nil:
		if len(nums) != nn {
			return nil, fmt.Errorf("%d node numbers for %d nodes", len(nums), nn)
		}
		for i, n := range nums {
			ids[i] = int(n)
		}
	case errors.Is(err, ErrNotFound):
		for i := range ids {
			ids[i] = i + 1
		}
	default:
		return nil, err
	}
	coords := make([]float64, 3)
	for i := 0; i < nn; i++ {
		for d := range coords {
			coords[d] = 0
			if d < dim {
				coords[d] = coo[d*nn+i]
			}
		}
		if err := msh.AddNode(ids[i], coords); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// readMEDCells reads each cell type's non-interlaced connectivity. MED
// connectivity holds 1-based node positions, translated here to node ids.
func readMEDCells(step Group, msh *mesh.Mesh, nodeIDs []int) error {
	cells, err := step.Group(CellsGroup)
	if errors.Is(err, ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	tags, err := cells.Members()
	if err != nil {
		return err
	}
	nextID := 1
	for _, tag := range tags {
		ct, ok := medCellTypes[tag]
		if !ok {
			return fmt.Errorf("unsupported MED cell type %q", tag)
		}
		tg, err := cells.Group(tag)
		if err != nil {
			return err
		}
		nod, err := tg.Int64s(ConnectivityName)
		if err != nil {
			return fmt.Errorf("cells %s: %w", tag, err)
		}
		npe := ct.etype.NumNodes()
		if len(nod)%npe != 0 {
			return fmt.Errorf("cells %s: %d connectivity entries for %d-node cells", tag, len(nod), npe)
		}
		ne := len(nod) / npe
		nums, err := tg.Int64s(CellNumbersName)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if err == nil && len(nums) != ne {
			return fmt.Errorf("cells %s: %d numbers for %d cells", tag, len(nums), ne)
		}
		med := make([]int, npe)
		for k := 0; k < ne; k++ {
			for j := range med {
				pos := int(nod[j*ne+k])
				if pos < 1 || pos > len(nodeIDs) {
					return fmt.Errorf("cells %s: node position %d out of range [1,%d]", tag, pos, len(nodeIDs))
				}
				med[j] = nodeIDs[pos-1]
			}
			nodes := make([]int, npe)
			for i := range nodes {
				if ct.perm != nil {
					nodes[i] = med[ct.perm[i]]
				} else {
					nodes[i] = med[i]
				}
			}
			id := nextID
			if nums != nil {
				id = int(nums[k])
			}
			nextID++
			if err := msh.AddElement(id, ct.etype, nodes); err != nil {
				return err
			}
		}
	}
	return nil
}
