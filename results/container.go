package results

import (
	"errors"
	"io"
)

// ErrNotFound is wrapped by container implementations for missing groups,
// datasets and attributes.
var ErrNotFound = errors.New("not found in results container")

// Group is a node of a hierarchical results container. Paths are slash
// separated and relative to the group.
type Group interface {
	// Members lists subgroup names in the container's native order.
	Members() ([]string, error)
	Group(path string) (Group, error)
	Float64s(path string) ([]float64, error)
	Int64s(path string) ([]int64, error)
	IntAttr(name string) (int64, error)
	FloatAttr(name string) (float64, error)
}

// Container is an open results file; Close releases it.
type Container interface {
	Group
	io.Closer
}

// Opener acquires a read-only container by path.
type Opener func(path string) (Container, error)
