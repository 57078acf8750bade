// Package readers loads Gmsh and SU2 mesh files into mesh.Mesh values.
package readers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chuongmep/adapy/mesh"
)

// ReadMeshFile reads a mesh file based on extension. The mesh is named after
// the file without its extension.
func ReadMeshFile(filename string) (*mesh.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmshAuto(filename)
	case ".su2":
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return ReadSU2(file, MeshName(filename))
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// MeshName derives a mesh name from a file path.
func MeshName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
