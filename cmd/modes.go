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

	"github.com/chuongmep/adapy/InputParameters"
	"github.com/chuongmep/adapy/export"
	"github.com/chuongmep/adapy/mesh"
	"github.com/chuongmep/adapy/mesh/readers"
	"github.com/chuongmep/adapy/results"
	"github.com/chuongmep/adapy/results/h5"
	"github.com/chuongmep/adapy/utils"
)

type ModesOptions struct {
	ResultsFile string
	MeshFile    string // Mesh stored in the results file when empty
	Out         string
	Format      string
	Oscillate   int // Frames per mode period, 0 for one displaced frame per mode
	Scale       float64
	Verbose     bool
}

// ModesCmd represents the modes command
var ModesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Read eigenmodes from a MED results file into animation frames",
	Long: `
Reads every mode of a modal analysis results file (MED/RMED, HDF5) and writes
the displaced node positions per mode with the rest geometry.

adapy modes -R model.rmed --oscillate 24 --scale 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mo := &ModesOptions{
			ResultsFile: viper.GetString("modes.results"),
			MeshFile:    viper.GetString("modes.mesh"),
			Out:         viper.GetString("modes.out"),
			Format:      viper.GetString("modes.format"),
			Oscillate:   viper.GetInt("modes.oscillate"),
			Scale:       viper.GetFloat64("modes.scale"),
			Verbose:     viper.GetBool("verbose"),
		}
		if len(mo.ResultsFile) == 0 {
			return fmt.Errorf("must supply a results file (-R, --results) in MED (.rmed) format")
		}
		return runMeasured(func() error {
			return RunModes(mo, h5.Open, os.Stdout)
		})
	},
}

func init() {
	rootCmd.AddCommand(ModesCmd)
	ModesCmd.Flags().StringP("results", "R", "", "MED results file holding the eigenmodes")
	ModesCmd.Flags().StringP("mesh", "F", "", "mesh file matching the results, defaults to the mesh in the results file")
	ModesCmd.Flags().StringP("out", "o", "", "output file, stdout when empty")
	ModesCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	ModesCmd.Flags().Int("oscillate", 0, "frames per mode period, 0 writes one displaced frame per mode")
	ModesCmd.Flags().Float64("scale", 1, "displacement amplification for oscillation frames")
	for _, name := range []string{"results", "mesh", "out", "format", "oscillate", "scale"} {
		_ = viper.BindPFlag("modes."+name, ModesCmd.Flags().Lookup(name))
	}
}

// RunModes reads the modes of the results file with open and writes them
// with their frames to w, or to the named output file.
func RunModes(mo *ModesOptions, open results.Opener, w io.Writer) error {
	format, err := export.ParseFormat(mo.Format)
	if err != nil {
		return err
	}
	if format != export.JSON && format != export.YAML {
		return fmt.Errorf("modes are written as json or yaml, not %s", format)
	}
	if mo.Oscillate < 0 {
		return fmt.Errorf("oscillate must be non-negative, got %d", mo.Oscillate)
	}

	reader := results.NewReader(nil)
	var (
		m      *mesh.Mesh
		modes  []results.ModalResult
		frames []results.AnimationFrame
	)
	if len(mo.MeshFile) != 0 {
		if m, err = readers.ReadMeshFile(mo.MeshFile); err != nil {
			return err
		}
		if modes, frames, err = reader.ReadFile(mo.ResultsFile, open, m); err != nil {
			return err
		}
	} else if m, modes, frames, err = readWithStoredMesh(reader, mo.ResultsFile, open); err != nil {
		return err
	}
	if mo.Verbose {
		m.PrintStatistics(os.Stderr)
	}

	vg, err := buildGeometry(m, InputParameters.NewViewParameters())
	if err != nil {
		return err
	}
	if mo.Oscillate > 0 {
		frames = nil
		for _, mr := range modes {
			osc, err := results.Oscillate(vg.Vertices, mr, mo.Oscillate, mo.Scale)
			if err != nil {
				return err
			}
			frames = append(frames, osc...)
		}
	}
	log.Printf("%d modes, %d frames", len(modes), len(frames))
	if mo.Verbose {
		log.Println(utils.GetMemUsage())
	}

	doc := export.NewDocument(vg)
	doc.Modes, doc.Frames = modes, frames
	return writeDocument(doc, format, mo.Out, w)
}

// readWithStoredMesh decodes the mesh and the modes from one container.
func readWithStoredMesh(reader *results.Reader, path string, open results.Opener) (
	m *mesh.Mesh, modes []results.ModalResult, frames []results.AnimationFrame, err error) {
	c, err := open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open results %s: %w", path, err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			m, modes, frames, err = nil, nil, nil, cerr
		}
	}()
	if m, err = results.ReadMesh(c, ""); err != nil {
		return nil, nil, nil, err
	}
	if modes, frames, err = reader.Read(c, m); err != nil {
		return nil, nil, nil, err
	}
	return m, modes, frames, nil
}
