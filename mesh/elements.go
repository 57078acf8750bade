package mesh

import (
	"fmt"
	"strings"
)

// ElementType is the closed set of element tags understood by the geometry
// core. Local node ordering follows Gmsh.
type ElementType int

const (
	Unknown ElementType = iota
	// 0D elements
	Point
	// 1D elements
	Line
	Line3 // 3-node line (quadratic)
	// 2D elements
	Triangle
	Quad
	Triangle6  // 6-node triangle (quadratic)
	Triangle9  // 9-node triangle
	Triangle10 // 10-node triangle
	Quad8      // 8-node quad (quadratic)
	Quad9      // 9-node quad
	// 3D elements
	Tet
	Hex
	Prism
	Pyramid
	Tet10     // 10-node tetrahedron (quadratic)
	Hex20     // 20-node hexahedron (quadratic)
	Hex27     // 27-node hexahedron
	Prism15   // 15-node prism (quadratic)
	Prism18   // 18-node prism
	Pyramid13 // 13-node pyramid
	Pyramid14 // 14-node pyramid

	numElementTypes
)

var elementTypeNames = [...]string{
	"Unknown",
	"Point",
	"Line", "Line3",
	"Triangle", "Quad", "Triangle6", "Triangle9", "Triangle10", "Quad8", "Quad9",
	"Tet", "Hex", "Prism", "Pyramid",
	"Tet10", "Hex20", "Hex27", "Prism15", "Prism18", "Pyramid13", "Pyramid14",
}

func (e ElementType) String() string {
	if e >= 0 && e < numElementTypes {
		return elementTypeNames[e]
	}
	return fmt.Sprintf("ElementType(%d)", int(e))
}

// ElementTypes returns every known type except Unknown, in enum order.
func ElementTypes() (types []ElementType) {
	for e := Point; e < numElementTypes; e++ {
		types = append(types, e)
	}
	return
}

// ParseElementType is case insensitive. It returns Unknown and false for
// names outside the enum.
func ParseElementType(name string) (ElementType, bool) {
	for e := Point; e < numElementTypes; e++ {
		if strings.EqualFold(elementTypeNames[e], name) {
			return e, true
		}
	}
	return Unknown, false
}

// Dimension returns the spatial dimension of the element
func (e ElementType) Dimension() int {
	switch e {
	case Point:
		return 0
	case Line, Line3:
		return 1
	case Triangle, Quad, Triangle6, Triangle9, Triangle10, Quad8, Quad9:
		return 2
	case Tet, Hex, Prism, Pyramid, Tet10, Hex20, Hex27, Prism15, Prism18, Pyramid13, Pyramid14:
		return 3
	default:
		return -1
	}
}

// NumNodes returns the number of nodes for each element type
func (e ElementType) NumNodes() int {
	switch e {
	case Point:
		return 1
	case Line:
		return 2
	case Line3, Triangle:
		return 3
	case Quad, Tet:
		return 4
	case Pyramid:
		return 5
	case Triangle6, Prism:
		return 6
	case Quad8, Hex:
		return 8
	case Triangle9, Quad9:
		return 9
	case Triangle10, Tet10:
		return 10
	case Pyramid13:
		return 13
	case Pyramid14:
		return 14
	case Prism15:
		return 15
	case Prism18:
		return 18
	case Hex20:
		return 20
	case Hex27:
		return 27
	default:
		return 0
	}
}

// CornerType returns the linear element sharing this element's corners.
func (e ElementType) CornerType() ElementType {
	switch e {
	case Line3:
		return Line
	case Triangle6, Triangle9, Triangle10:
		return Triangle
	case Quad8, Quad9:
		return Quad
	case Tet10:
		return Tet
	case Hex20, Hex27:
		return Hex
	case Prism15, Prism18:
		return Prism
	case Pyramid13, Pyramid14:
		return Pyramid
	default:
		return e
	}
}
