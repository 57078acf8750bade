package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chuongmep/adapy/mesh"
)

// gmshElementTypes maps Gmsh element type numbers to our ElementType
var gmshElementTypes = map[int]mesh.ElementType{
	1:  mesh.Line,       // 2-node line
	2:  mesh.Triangle,   // 3-node triangle
	3:  mesh.Quad,       // 4-node quadrangle
	4:  mesh.Tet,        // 4-node tetrahedron
	5:  mesh.Hex,        // 8-node hexahedron
	6:  mesh.Prism,      // 6-node prism
	7:  mesh.Pyramid,    // 5-node pyramid
	8:  mesh.Line3,      // 3-node line
	9:  mesh.Triangle6,  // 6-node triangle
	10: mesh.Quad9,      // 9-node quadrangle
	11: mesh.Tet10,      // 10-node tetrahedron
	12: mesh.Hex27,      // 27-node hexahedron
	13: mesh.Prism18,    // 18-node prism
	14: mesh.Pyramid14,  // 14-node pyramid
	15: mesh.Point,      // 1-node point
	16: mesh.Quad8,      // 8-node quadrangle
	17: mesh.Hex20,      // 20-node hexahedron
	18: mesh.Prism15,    // 15-node prism
	19: mesh.Pyramid13,  // 13-node pyramid
	20: mesh.Triangle9,  // 9-node triangle
	21: mesh.Triangle10, // 10-node triangle
}

func gmshElementType(gmshType int) (mesh.ElementType, error) {
	etype, ok := gmshElementTypes[gmshType]
	if !ok {
		return mesh.Unknown, fmt.Errorf("unsupported Gmsh element type %d", gmshType)
	}
	return etype, nil
}

// ReadGmshAuto detects the Gmsh format version and reads the file
func ReadGmshAuto(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	version, err := gmshVersion(file)
	if err != nil {
		return nil, err
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	name := MeshName(filename)
	switch {
	case strings.HasPrefix(version, "4."):
		return ReadGmsh4(file, name)
	case strings.HasPrefix(version, "2."):
		return ReadGmsh22(file, name)
	default:
		return nil, fmt.Errorf("unsupported Gmsh format version: %s", version)
	}
}

func gmshVersion(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "$MeshFormat" {
			continue
		}
		if scanner.Scan() {
			if parts := strings.Fields(scanner.Text()); len(parts) > 0 {
				return parts[0], nil
			}
		}
		break
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("could not find $MeshFormat section")
}

// readMeshFormat rejects binary files; only ASCII is supported.
func readMeshFormat(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}
	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}
	if fileType, _ := strconv.Atoi(parts[1]); fileType != 0 {
		return fmt.Errorf("binary Gmsh files are not supported")
	}
	return skipSection(scanner, "$EndMeshFormat")
}

func skipSection(scanner *bufio.Scanner, endMarker string) error {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == endMarker {
			return nil
		}
	}
	return fmt.Errorf("unexpected EOF looking for %s", endMarker)
}

func parseInts(fields []string) ([]int, error) {
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func parseCoords(fields []string) ([]float64, error) {
	coords := make([]float64, 3)
	for i := 0; i < 3 && i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate: %v", err)
		}
		coords[i] = v
	}
	return coords, nil
}
