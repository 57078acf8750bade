package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/chuongmep/adapy/geometry"
)

// WriteDXF saves every edge of vg as a 3D LINE entity.
func WriteDXF(path string, vg *geometry.ViewGeometry) error {
	if err := vg.Validate(); err != nil {
		return err
	}
	if len(vg.Edges) == 0 {
		return fmt.Errorf("%s: no edges to write", vg.EdgesName())
	}
	d := dxf.NewDrawing()
	for _, e := range vg.Edges {
		a, b := vg.Vertices[e[0]], vg.Vertices[e[1]]
		if _, err := d.Line(
			float64(a[0]), float64(a[1]), float64(a[2]),
			float64(b[0]), float64(b[1]), float64(b[2])); err != nil {
			return err
		}
	}
	return d.SaveAs(path)
}
