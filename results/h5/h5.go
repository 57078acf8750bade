// Package h5 opens HDF5 results files (MED/RMED) as results containers.
package h5

import (
	"fmt"
	"strings"

	"gonum.org/v1/hdf5"

	"github.com/chuongmep/adapy/results"
)

// File is a read-only HDF5 file seen as a results.Container.
type File struct {
	group
	f *hdf5.File
}

// Open opens path read-only. It satisfies results.Opener.
func Open(path string) (results.Container, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, err
	}
	return &File{group: group{fg: &f.CommonFG, path: "/"}, f: f}, nil
}

func (f *File) Close() error {
	return f.f.Close()
}

// group addresses objects by absolute path from the file root so that no
// intermediate HDF5 handles outlive a call.
type group struct {
	fg   *hdf5.CommonFG
	path string
}

func (g group) abs(path string) string {
	return strings.TrimSuffix(g.path, "/") + "/" + strings.Trim(path, "/")
}

func notFound(kind, path string, err error) error {
	return fmt.Errorf("%s %q: %w (%v)", kind, path, results.ErrNotFound, err)
}

func (g group) Members() ([]string, error) {
	grp, err := g.open()
	if err != nil {
		return nil, err
	}
	defer grp.Close()
	n, err := grp.NumObjects()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	for i := uint(0); i < n; i++ {
		typ, err := grp.ObjectTypeByIndex(i)
		if err != nil {
			return nil, err
		}
		if typ != hdf5.H5G_GROUP {
			continue
		}
		name, err := grp.ObjectNameByIndex(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (g group) open() (*hdf5.Group, error) {
	grp, err := g.fg.OpenGroup(g.path)
	if err != nil {
		return nil, notFound("group", g.path, err)
	}
	return grp, nil
}

func (g group) Group(path string) (results.Group, error) {
	sub := group{fg: g.fg, path: g.abs(path)}
	grp, err := sub.open()
	if err != nil {
		return nil, err
	}
	grp.Close()
	return sub, nil
}

func (g group) Float64s(path string) ([]float64, error) {
	ds, err := g.fg.OpenDataset(g.abs(path))
	if err != nil {
		return nil, notFound("dataset", g.abs(path), err)
	}
	defer ds.Close()
	space := ds.Space()
	defer space.Close()
	data := make([]float64, space.SimpleExtentNPoints())
	if err := ds.Read(&data); err != nil {
		return nil, fmt.Errorf("read %s: %w", g.abs(path), err)
	}
	return data, nil
}

func (g group) Int64s(path string) ([]int64, error) {
	ds, err := g.fg.OpenDataset(g.abs(path))
	if err != nil {
		return nil, notFound("dataset", g.abs(path), err)
	}
	defer ds.Close()
	space := ds.Space()
	defer space.Close()
	data := make([]int64, space.SimpleExtentNPoints())
	if err := ds.Read(&data); err != nil {
		return nil, fmt.Errorf("read %s: %w", g.abs(path), err)
	}
	return data, nil
}

func (g group) IntAttr(name string) (v int64, err error) {
	err = g.readAttr(name, &v, hdf5.T_NATIVE_INT64)
	return
}

func (g group) FloatAttr(name string) (v float64, err error) {
	err = g.readAttr(name, &v, hdf5.T_NATIVE_DOUBLE)
	return
}

func (g group) readAttr(name string, data interface{}, dtype *hdf5.Datatype) error {
	grp, err := g.open()
	if err != nil {
		return err
	}
	defer grp.Close()
	attr, err := grp.OpenAttribute(name)
	if err != nil {
		return notFound("attribute", g.path+"@"+name, err)
	}
	defer attr.Close()
	return attr.Read(data, dtype)
}
