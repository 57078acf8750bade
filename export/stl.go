package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chuongmep/adapy/geometry"
)

// Triangles fans every face of vg into STL triangles. Beams have no faces and
// do not appear.
func Triangles(vg *geometry.ViewGeometry) []*sdf.Triangle3 {
	var tris []*sdf.Triangle3
	for _, f := range vg.Faces {
		for _, t := range geometry.Triangulate(f) {
			tris = append(tris, &sdf.Triangle3{
				toVec(vg.Vertices[t[0]]),
				toVec(vg.Vertices[t[1]]),
				toVec(vg.Vertices[t[2]]),
			})
		}
	}
	return tris
}

func toVec(v mgl32.Vec3) v3.Vec {
	return v3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// WriteSTL saves the faces of vg as a binary STL file.
func WriteSTL(path string, vg *geometry.ViewGeometry) error {
	if err := vg.Validate(); err != nil {
		return err
	}
	tris := Triangles(vg)
	if len(tris) == 0 {
		return fmt.Errorf("%s: no faces to write", vg.FacesName())
	}
	return render.SaveSTL(path, tris)
}
