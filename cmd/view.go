/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/chuongmep/adapy/InputParameters"
	"github.com/chuongmep/adapy/export"
	"github.com/chuongmep/adapy/geometry"
	"github.com/chuongmep/adapy/mesh"
	"github.com/chuongmep/adapy/mesh/readers"
	"github.com/chuongmep/adapy/shapes"
	"github.com/chuongmep/adapy/utils"
)

type ViewOptions struct {
	MeshFile    string
	ParamsFile  string
	Out         string
	Format      string // Overrides the parameter file when set
	UniqueEdges bool
	Verbose     bool
}

// ViewCmd represents the view command
var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Convert a mesh into vertex, edge and face arrays",
	Long: `
Reads a Gmsh (.msh) or SU2 (.su2) mesh and writes its view geometry as JSON,
YAML, STL (faces) or DXF (edges).

adapy view -F model.msh -f stl -o model.stl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vo := &ViewOptions{
			MeshFile:    viper.GetString("view.mesh"),
			ParamsFile:  viper.GetString("view.params"),
			Out:         viper.GetString("view.out"),
			Format:      viper.GetString("view.format"),
			UniqueEdges: viper.GetBool("view.unique-edges"),
			Verbose:     viper.GetBool("verbose"),
		}
		if len(vo.MeshFile) == 0 {
			return fmt.Errorf("must supply a mesh file (-F, --mesh) in Gmsh (.msh) or SU2 (.su2) format")
		}
		return runMeasured(func() error {
			return RunView(vo, os.Stdout)
		})
	},
}

func init() {
	rootCmd.AddCommand(ViewCmd)
	ViewCmd.Flags().StringP("mesh", "F", "", "mesh file to read, Gmsh (.msh) or SU2 (.su2)")
	ViewCmd.Flags().StringP("params", "I", "", "YAML file for view parameters like:\n\t- Format\n\t- UniqueEdges")
	ViewCmd.Flags().StringP("out", "o", "", "output file, stdout for json/yaml when empty")
	ViewCmd.Flags().StringP("format", "f", "", "output format: json, yaml, stl or dxf")
	ViewCmd.Flags().Bool("unique-edges", false, "merge edges shared by adjacent elements")
	for _, name := range []string{"mesh", "params", "out", "format", "unique-edges"} {
		_ = viper.BindPFlag("view."+name, ViewCmd.Flags().Lookup(name))
	}
}

// loadParameters applies the parameter file, if any, over the defaults.
func loadParameters(filename string) (*InputParameters.ViewParameters, error) {
	vp := InputParameters.NewViewParameters()
	if len(filename) == 0 {
		return vp, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err = vp.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return vp, nil
}

// RunView reads the mesh and writes its geometry. JSON and YAML go to w
// unless an output file is named.
func RunView(vo *ViewOptions, w io.Writer) error {
	vp, err := loadParameters(vo.ParamsFile)
	if err != nil {
		return err
	}
	if len(vo.Format) != 0 {
		vp.Format = vo.Format
	}
	vp.UniqueEdges = vp.UniqueEdges || vo.UniqueEdges
	format, err := export.ParseFormat(vp.Format)
	if err != nil {
		return err
	}

	m, err := readers.ReadMeshFile(vo.MeshFile)
	if err != nil {
		return err
	}
	if len(vp.MeshName) != 0 {
		m.Name = vp.MeshName
	}
	if vo.Verbose {
		vp.Print(os.Stderr)
		m.PrintStatistics(os.Stderr)
	}

	vg, err := buildGeometry(m, vp)
	if err != nil {
		return err
	}
	if vo.Verbose {
		printGeometryStatistics(os.Stderr, vg)
		log.Println(utils.GetMemUsage())
	}
	return writeDocument(export.NewDocument(vg), format, vo.Out, w)
}

func buildGeometry(m *mesh.Mesh, vp *InputParameters.ViewParameters) (*geometry.ViewGeometry, error) {
	x := geometry.NewExtractor(shapes.Default())
	vg, err := x.ToViewGeometry(m)
	if err != nil {
		return nil, err
	}
	if vp.ConvertBeamToShell {
		if vg.Faces, err = x.Faces(m, true); err != nil {
			return nil, err
		}
	}
	if vp.UniqueEdges {
		vg.Edges = geometry.UniqueEdges(vg.Edges)
	}
	return vg, nil
}

func printGeometryStatistics(w io.Writer, vg *geometry.ViewGeometry) {
	fmt.Fprintf(w, "%s: %d\n", vg.VerticesName(), len(vg.Vertices))
	fmt.Fprintf(w, "%s: %d\n", vg.EdgesName(), len(vg.Edges))
	fmt.Fprintf(w, "%s: %d\n", vg.FacesName(), len(vg.Faces))
	if len(vg.Vertices) == 0 {
		return
	}
	valence := geometry.Valence(geometry.Adjacency(len(vg.Vertices), vg.Edges))
	vals := make([]float64, len(valence))
	for i, v := range valence {
		vals[i] = float64(v)
	}
	fmt.Fprintf(w, "vertex valence: min %g, max %g, mean %.3f\n",
		floats.Min(vals), floats.Max(vals), floats.Sum(vals)/float64(len(vals)))
	if bb, err := geometry.BoundingBoxOf(vg); err == nil {
		fmt.Fprintf(w, "bounds: min %v, max %v, center %v\n", bb.Min, bb.Max, bb.Center)
	}
}

// createFile opens document outputs for writing.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// writeDocument writes doc in format. Geometry formats need a file; an empty
// out derives one from the document name.
func writeDocument(doc *export.Document, format export.Format, out string, w io.Writer) (err error) {
	switch format {
	case export.STL, export.DXF:
		if len(out) == 0 {
			out = doc.Name + format.Ext()
		}
		log.Printf("writing %s", out)
		if format == export.STL {
			return export.WriteSTL(out, doc.Geometry)
		}
		return export.WriteDXF(out, doc.Geometry)
	}

	if len(out) != 0 {
		var f io.WriteCloser
		if f, err = createFile(out); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", out, cerr)
			}
		}()
		w = f
	}
	if format == export.YAML {
		return export.WriteYAML(w, doc)
	}
	return export.WriteJSON(w, doc)
}
