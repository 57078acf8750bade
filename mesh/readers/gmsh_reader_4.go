package readers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chuongmep/adapy/mesh"
)

// ReadGmsh4 reads an ASCII Gmsh MSH file format version 4.1. Entities,
// physical names and partitions are skipped; only nodes and elements are
// needed for geometry.
func ReadGmsh4(r io.Reader, name string) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
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
			if err := readNodes4(scanner, msh); err != nil {
				return nil, err
			}

		case "$Elements":
			if err := readElements4(scanner, msh); err != nil {
				return nil, err
			}

		default:
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

// blockHeader reads "a b c d" entity block headers
func blockHeader(scanner *bufio.Scanner, what string) ([]int, error) {
	if !scanner.Scan() {
		return nil, fmt.Errorf("unexpected EOF in %s", what)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid %s header", what)
	}
	return parseInts(fields[:4])
}

func readNodes4(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	// Format: numEntityBlocks numNodes minNodeTag maxNodeTag
	header, err := blockHeader(scanner, "Nodes")
	if err != nil {
		return err
	}
	numEntityBlocks := header[0]

	for i := 0; i < numEntityBlocks; i++ {
		// entityDim entityTag parametric numNodesInBlock
		block, err := blockHeader(scanner, "node entity block")
		if err != nil {
			return err
		}
		parametric, numNodesInBlock := block[2], block[3]
		if parametric != 0 {
			return fmt.Errorf("parametric node coordinates are not supported")
		}

		nodeTags := make([]int, numNodesInBlock)
		for j := range nodeTags {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading node tags")
			}
			if nodeTags[j], err = strconv.Atoi(strings.TrimSpace(scanner.Text())); err != nil {
				return fmt.Errorf("invalid node tag: %v", err)
			}
		}

		for j := 0; j < numNodesInBlock; j++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading node coordinates")
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) < 3 {
				return fmt.Errorf("invalid node coordinate line")
			}
			coords, err := parseCoords(fields)
			if err != nil {
				return err
			}
			if err = msh.AddNode(nodeTags[j], coords); err != nil {
				return err
			}
		}
	}

	return skipSection(scanner, "$EndNodes")
}

func readElements4(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	// Format: numEntityBlocks numElements minElementTag maxElementTag
	header, err := blockHeader(scanner, "Elements")
	if err != nil {
		return err
	}
	numEntityBlocks := header[0]

	for i := 0; i < numEntityBlocks; i++ {
		// entityDim entityTag elementType numElementsInBlock
		block, err := blockHeader(scanner, "element entity block")
		if err != nil {
			return err
		}
		etype, err := gmshElementType(block[2])
		if err != nil {
			return err
		}
		numElemsInBlock := block[3]
		expectedNodes := etype.NumNodes()

		for j := 0; j < numElemsInBlock; j++ {
			if !scanner.Scan() {
				return fmt.Errorf("unexpected EOF reading elements")
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) < 1+expectedNodes {
				return fmt.Errorf("invalid element line: expected at least %d fields, got %d",
					1+expectedNodes, len(fields))
			}
			vals, err := parseInts(fields[:1+expectedNodes])
			if err != nil {
				return fmt.Errorf("invalid element line: %v", err)
			}
			if err := msh.AddElement(vals[0], etype, vals[1:]); err != nil {
				return err
			}
		}
	}

	return skipSection(scanner, "$EndElements")
}
