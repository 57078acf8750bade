package readers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chuongmep/adapy/mesh"
)

// ReadGmsh22 reads an ASCII Gmsh MSH file format version 2.2
func ReadGmsh22(r io.Reader, name string) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)
	msh := mesh.NewMesh(name)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := readMeshFormat(scanner); err != nil {
				return nil, err
			}

		case "$Nodes":
			if err := readNodes22(scanner, msh); err != nil {
				return nil, err
			}

		case "$Elements":
			if err := readElements22(scanner, msh); err != nil {
				return nil, err
			}

		default:
			// Skip everything else ($PhysicalNames, $Periodic, data sections)
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				if err := skipSection(scanner, "$End"+line[1:]); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}
	if err := msh.Validate(); err != nil {
		return nil, err
	}
	return msh, nil
}

// readNodes22 reads nodes in v2.2 format: id x y z
func readNodes22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}

	numNodes, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid node count: %v", err)
	}

	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading nodes")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return fmt.Errorf("invalid node line: %s", scanner.Text())
		}

		nodeID, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("invalid node id: %v", err)
		}
		coords, err := parseCoords(parts[1:4])
		if err != nil {
			return err
		}
		if err = msh.AddNode(nodeID, coords); err != nil {
			return err
		}
	}

	return skipSection(scanner, "$EndNodes")
}

// readElements22 reads elements in v2.2 format:
// elem-id elem-type num-tags tag1 ... node1 node2 ...
func readElements22(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}

	numElements, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid element count: %v", err)
	}

	for i := 0; i < numElements; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading elements")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return fmt.Errorf("invalid element line: %s", scanner.Text())
		}

		head, err := parseInts(parts[:3])
		if err != nil {
			return fmt.Errorf("invalid element line: %v", err)
		}
		elemID, gmshType, numTags := head[0], head[1], head[2]

		etype, err := gmshElementType(gmshType)
		if err != nil {
			return fmt.Errorf("element %d: %w", elemID, err)
		}

		nodeStart := 3 + numTags
		expectedNodes := etype.NumNodes()
		if len(parts) < nodeStart+expectedNodes {
			return fmt.Errorf("element %d: expected %d nodes, got %d",
				elemID, expectedNodes, len(parts)-nodeStart)
		}

		nodeIDs, err := parseInts(parts[nodeStart : nodeStart+expectedNodes])
		if err != nil {
			return fmt.Errorf("element %d: %v", elemID, err)
		}
		if err := msh.AddElement(elemID, etype, nodeIDs); err != nil {
			return err
		}
	}

	return skipSection(scanner, "$EndElements")
}
