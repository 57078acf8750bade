package readers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chuongmep/adapy/mesh"
)

// su2ElementTypes maps SU2/VTK element type identifiers to our ElementType
var su2ElementTypes = map[int]mesh.ElementType{
	3:  mesh.Line,     // VTK_LINE
	5:  mesh.Triangle, // VTK_TRIANGLE
	9:  mesh.Quad,     // VTK_QUAD
	10: mesh.Tet,      // VTK_TETRA
	12: mesh.Hex,      // VTK_HEXAHEDRON
	13: mesh.Prism,    // VTK_WEDGE
	14: mesh.Pyramid,  // VTK_PYRAMID
}

// ReadSU2 reads an SU2 native format mesh. SU2 numbers points and elements
// implicitly from 0; they are given ids index+1. Boundary markers are not
// read.
func ReadSU2(r io.Reader, name string) (*mesh.Mesh, error) {
	msh := mesh.NewMesh(name)
	scanner := bufio.NewScanner(r)

	var (
		ndime              int
		hasNDIME, hasNPOIN bool
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments (text after %)
		if idx := strings.Index(line, "%"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "NDIME="):
			hasNDIME = true
			if _, err := fmt.Sscanf(line, "NDIME=%d", &ndime); err != nil {
				return nil, fmt.Errorf("invalid NDIME line: %s", line)
			}
			if ndime != 2 && ndime != 3 {
				return nil, fmt.Errorf("unsupported dimension: NDIME=%d", ndime)
			}

		case strings.HasPrefix(line, "NPOIN="):
			if !hasNDIME {
				return nil, fmt.Errorf("NPOIN= before NDIME=")
			}
			hasNPOIN = true
			var npoin int
			if _, err := fmt.Sscanf(line, "NPOIN=%d", &npoin); err != nil {
				return nil, fmt.Errorf("invalid NPOIN line: %s", line)
			}
			for i := 0; i < npoin; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading nodes")
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < ndime {
					return nil, fmt.Errorf("invalid node line: expected at least %d coordinates", ndime)
				}
				coords, err := parseCoords(fields[:ndime])
				if err != nil {
					return nil, err
				}
				if err = msh.AddNode(i+1, coords); err != nil {
					return nil, err
				}
			}

		case strings.HasPrefix(line, "NELEM="):
			var nelem int
			if _, err := fmt.Sscanf(line, "NELEM=%d", &nelem); err != nil {
				return nil, fmt.Errorf("invalid NELEM line: %s", line)
			}
			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading elements")
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < 2 {
					return nil, fmt.Errorf("invalid element line")
				}
				su2Type, err := strconv.Atoi(fields[0])
				if err != nil {
					return nil, fmt.Errorf("invalid element type: %v", err)
				}
				etype, ok := su2ElementTypes[su2Type]
				if !ok {
					return nil, fmt.Errorf("unknown SU2 element type: %d", su2Type)
				}
				numNodes := etype.NumNodes()
				if len(fields) < numNodes+1 {
					return nil, fmt.Errorf("element type %v expects %d nodes, got %d fields",
						etype, numNodes, len(fields)-1)
				}
				nodes, err := parseInts(fields[1 : 1+numNodes])
				if err != nil {
					return nil, fmt.Errorf("invalid node index: %v", err)
				}
				for j := range nodes {
					nodes[j]++ // 0-based point index to node id
				}
				if err = msh.AddElement(i+1, etype, nodes); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}
	if !hasNDIME {
		return nil, fmt.Errorf("missing required NDIME= section")
	}
	if !hasNPOIN {
		return nil, fmt.Errorf("missing required NPOIN= section")
	}
	if err := msh.Validate(); err != nil {
		return nil, err
	}
	return msh, nil
}
