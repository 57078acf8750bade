package geometry

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrEmptyInput = errors.New("bounding box of empty input")

type BoundingBox struct {
	Min    mgl32.Vec3 `json:"min"`
	Max    mgl32.Vec3 `json:"max"`
	Center mgl32.Vec3 `json:"center"`
}

// ComputeBoundingBox row-stacks the arrays, which may differ in length, and
// reduces each axis to its extremes.
func ComputeBoundingBox(arrays [][]mgl32.Vec3) (bb BoundingBox, err error) {
	var nrows int
	for _, a := range arrays {
		nrows += len(a)
	}
	if nrows == 0 {
		err = ErrEmptyInput
		return
	}
	var (
		XYZ = mat.NewDense(nrows, 3, nil)
		row int
	)
	for _, a := range arrays {
		for _, v := range a {
			XYZ.Set(row, 0, float64(v[0]))
			XYZ.Set(row, 1, float64(v[1]))
			XYZ.Set(row, 2, float64(v[2]))
			row++
		}
	}
	col := make([]float64, nrows)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, XYZ)
		lo, hi := floats.Min(col), floats.Max(col)
		bb.Min[j] = float32(lo)
		bb.Max[j] = float32(hi)
		bb.Center[j] = float32((lo + hi) / 2)
	}
	return
}

// BoundingBoxOf bounds the vertex arrays of already extracted geometries.
func BoundingBoxOf(geoms ...*ViewGeometry) (BoundingBox, error) {
	arrays := make([][]mgl32.Vec3, 0, len(geoms))
	for _, vg := range geoms {
		if vg != nil {
			arrays = append(arrays, vg.Vertices)
		}
	}
	return ComputeBoundingBox(arrays)
}

// Size is the extent along each axis.
func (bb BoundingBox) Size() mgl32.Vec3 {
	return bb.Max.Sub(bb.Min)
}
