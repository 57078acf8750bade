// Package shapes holds the element shape catalog: for every element type the
// local node positions forming its edges and faces.
package shapes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chuongmep/adapy/mesh"
)

// Category groups element types by how they render.
type Category uint8

const (
	Other Category = iota
	Beam
	Shell
	Solid
)

func (c Category) String() string {
	return [...]string{"Other", "Beam", "Shell", "Solid"}[c]
}

// CategoryOf derives the category from the element dimension.
func CategoryOf(t mesh.ElementType) Category {
	switch t.Dimension() {
	case 1:
		return Beam
	case 2:
		return Shell
	case 3:
		return Solid
	default:
		return Other
	}
}

// ElementShape is the local topology of one element type. Edge and face
// entries are positions into an element's node list.
type ElementShape struct {
	Type     mesh.ElementType
	Category Category
	Edges    [][2]int
	Faces    [][]int
}

func (s *ElementShape) IsBeam() bool { return s.Category == Beam }

var ErrUnknownElementType = errors.New("unknown element type")

// UnknownElementTypeError names the tag that has no catalog entry.
type UnknownElementTypeError struct {
	Type mesh.ElementType
}

func (e *UnknownElementTypeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownElementType, e.Type)
}

func (e *UnknownElementTypeError) Unwrap() error { return ErrUnknownElementType }

// Catalog maps element types to shapes. It is read-only once built.
type Catalog struct {
	shapes map[mesh.ElementType]*ElementShape
}

// NewCatalog builds a catalog from explicit entries. Every local index must
// address a node of the entry's type and every face needs at least three
// positions.
func NewCatalog(entries ...ElementShape) (*Catalog, error) {
	c := &Catalog{shapes: make(map[mesh.ElementType]*ElementShape, len(entries))}
	for i := range entries {
		s := entries[i]
		if _, dup := c.shapes[s.Type]; dup {
			return nil, fmt.Errorf("duplicate catalog entry for %s", s.Type)
		}
		nn := s.Type.NumNodes()
		for _, e := range s.Edges {
			if e[0] < 0 || e[0] >= nn || e[1] < 0 || e[1] >= nn {
				return nil, fmt.Errorf("%s: edge %v outside %d local nodes", s.Type, e, nn)
			}
		}
		for _, f := range s.Faces {
			if len(f) < 3 {
				return nil, fmt.Errorf("%s: face %v has fewer than 3 nodes", s.Type, f)
			}
			for _, p := range f {
				if p < 0 || p >= nn {
					return nil, fmt.Errorf("%s: face %v outside %d local nodes", s.Type, f, nn)
				}
			}
		}
		c.shapes[s.Type] = &s
	}
	return c, nil
}

// Lookup returns the shape registered for t.
func (c *Catalog) Lookup(t mesh.ElementType) (*ElementShape, error) {
	if s, ok := c.shapes[t]; ok {
		return s, nil
	}
	return nil, &UnknownElementTypeError{Type: t}
}

// IsBeam reports whether t is registered as a beam.
func (c *Catalog) IsBeam(t mesh.ElementType) bool {
	s, ok := c.shapes[t]
	return ok && s.IsBeam()
}

// Types lists the registered element types in enum order.
func (c *Catalog) Types() []mesh.ElementType {
	types := make([]mesh.ElementType, 0, len(c.shapes))
	for t := range c.shapes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

var defaultCatalog = mustBuildDefault()

// Default returns the process-wide catalog covering every mesh.ElementType
// except Unknown.
func Default() *Catalog { return defaultCatalog }

func mustBuildDefault() *Catalog {
	var entries []ElementShape
	for _, t := range mesh.ElementTypes() {
		entries = append(entries, buildShape(t))
	}
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(err)
	}
	return c
}
