package results

import (
	"fmt"
	"strings"
)

// MemoryGroup is an in-memory Group. Members keep insertion order.
type MemoryGroup struct {
	members    []string
	groups     map[string]*MemoryGroup
	floats     map[string][]float64
	ints       map[string][]int64
	intAttrs   map[string]int64
	floatAttrs map[string]float64
}

// MemoryContainer is a Container held entirely in memory.
type MemoryContainer struct {
	*MemoryGroup
	Closed bool
}

func NewMemoryContainer() *MemoryContainer {
	return &MemoryContainer{MemoryGroup: newMemoryGroup()}
}

func (c *MemoryContainer) Close() error {
	c.Closed = true
	return nil
}

func newMemoryGroup() *MemoryGroup {
	return &MemoryGroup{
		groups:     make(map[string]*MemoryGroup),
		floats:     make(map[string][]float64),
		ints:       make(map[string][]int64),
		intAttrs:   make(map[string]int64),
		floatAttrs: make(map[string]float64),
	}
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// MustGroup returns the group at path, creating missing levels.
func (g *MemoryGroup) MustGroup(path string) *MemoryGroup {
	cur := g
	for _, name := range splitPath(path) {
		next, ok := cur.groups[name]
		if !ok {
			next = newMemoryGroup()
			cur.groups[name] = next
			cur.members = append(cur.members, name)
		}
		cur = next
	}
	return cur
}

func (g *MemoryGroup) parentOf(path string) (*MemoryGroup, string) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return g, ""
	}
	return g.MustGroup(strings.Join(parts[:len(parts)-1], "/")), parts[len(parts)-1]
}

func (g *MemoryGroup) SetFloat64s(path string, data []float64) *MemoryGroup {
	parent, name := g.parentOf(path)
	parent.floats[name] = data
	return g
}

func (g *MemoryGroup) SetInt64s(path string, data []int64) *MemoryGroup {
	parent, name := g.parentOf(path)
	parent.ints[name] = data
	return g
}

func (g *MemoryGroup) SetIntAttr(name string, v int64) *MemoryGroup {
	g.intAttrs[name] = v
	return g
}

func (g *MemoryGroup) SetFloatAttr(name string, v float64) *MemoryGroup {
	g.floatAttrs[name] = v
	return g
}

func (g *MemoryGroup) Members() ([]string, error) {
	return append([]string(nil), g.members...), nil
}

func (g *MemoryGroup) lookup(path string) (*MemoryGroup, error) {
	cur := g
	for _, name := range splitPath(path) {
		next, ok := cur.groups[name]
		if !ok {
			return nil, fmt.Errorf("group %q: %w", path, ErrNotFound)
		}
		cur = next
	}
	return cur, nil
}

func (g *MemoryGroup) Group(path string) (Group, error) {
	grp, err := g.lookup(path)
	if err != nil {
		return nil, err
	}
	return grp, nil
}

func (g *MemoryGroup) dataParent(path string) (*MemoryGroup, string, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("dataset %q: %w", path, ErrNotFound)
	}
	parent, err := g.lookup(strings.Join(parts[:len(parts)-1], "/"))
	if err != nil {
		return nil, "", fmt.Errorf("dataset %q: %w", path, ErrNotFound)
	}
	return parent, parts[len(parts)-1], nil
}

func (g *MemoryGroup) Float64s(path string) ([]float64, error) {
	parent, name, err := g.dataParent(path)
	if err != nil {
		return nil, err
	}
	if data, ok := parent.floats[name]; ok {
		return append([]float64(nil), data...), nil
	}
	if data, ok := parent.ints[name]; ok {
		out := make([]float64, len(data))
		for i, v := range data {
			out[i] = float64(v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("dataset %q: %w", path, ErrNotFound)
}

func (g *MemoryGroup) Int64s(path string) ([]int64, error) {
	parent, name, err := g.dataParent(path)
	if err != nil {
		return nil, err
	}
	if data, ok := parent.ints[name]; ok {
		return append([]int64(nil), data...), nil
	}
	return nil, fmt.Errorf("dataset %q: %w", path, ErrNotFound)
}

func (g *MemoryGroup) IntAttr(name string) (int64, error) {
	if v, ok := g.intAttrs[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("attribute %q: %w", name, ErrNotFound)
}

func (g *MemoryGroup) FloatAttr(name string) (float64, error) {
	if v, ok := g.floatAttrs[name]; ok {
		return v, nil
	}
	if v, ok := g.intAttrs[name]; ok {
		return float64(v), nil
	}
	return 0, fmt.Errorf("attribute %q: %w", name, ErrNotFound)
}
