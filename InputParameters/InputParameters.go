package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
)

type AnimationParameters struct {
	Steps int     `json:"Steps"` // Frames per oscillation period, 0 disables
	Scale float64 `json:"Scale"` // Displacement amplification
}

// Parameters obtained from the YAML view file
type ViewParameters struct {
	Title              string              `json:"Title"`
	MeshName           string              `json:"MeshName"` // Overrides the name derived from the mesh file
	Format             string              `json:"Format"`
	UniqueEdges        bool                `json:"UniqueEdges"`
	ConvertBeamToShell bool                `json:"ConvertBeamToShell"`
	Animation          AnimationParameters `json:"Animation"`
}

// Defaults are applied before parsing so omitted keys keep them.
func NewViewParameters() *ViewParameters {
	return &ViewParameters{
		Format:    "json",
		Animation: AnimationParameters{Scale: 1},
	}
}

func (vp *ViewParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, vp); err != nil {
		return err
	}
	if vp.Animation.Steps < 0 {
		return fmt.Errorf("Animation.Steps must be non-negative, got %d", vp.Animation.Steps)
	}
	return nil
}

func (vp *ViewParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", vp.Title)
	fmt.Fprintf(w, "\"%s\"\t\t= MeshName\n", vp.MeshName)
	fmt.Fprintf(w, "[%s]\t\t\t= Format\n", vp.Format)
	fmt.Fprintf(w, "[%v]\t\t\t= UniqueEdges\n", vp.UniqueEdges)
	fmt.Fprintf(w, "[%v]\t\t\t= ConvertBeamToShell\n", vp.ConvertBeamToShell)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Animation Steps\n", vp.Animation.Steps)
	fmt.Fprintf(w, "%8.5f\t\t= Animation Scale\n", vp.Animation.Scale)
}
