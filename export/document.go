// Package export writes view geometry and animation frames to files that
// external viewers understand.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/chuongmep/adapy/geometry"
	"github.com/chuongmep/adapy/results"
)

type Format uint8

const (
	JSON Format = iota
	YAML
	STL
	DXF
)

var formatNames = map[Format]string{
	JSON: "json",
	YAML: "yaml",
	STL:  "stl",
	DXF:  "dxf",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext is the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if s == "yml" {
		return YAML, nil
	}
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown export format %q, want one of json, yaml, stl, dxf", s)
}

// Document is the serialized form of a view: the named geometry arrays, its
// bounds and optional mode shapes.
type Document struct {
	Name        string                   `json:"name"`
	Vertices    string                   `json:"verticesName"`
	Edges       string                   `json:"edgesName"`
	Faces       string                   `json:"facesName"`
	Geometry    *geometry.ViewGeometry   `json:"geometry"`
	BoundingBox *geometry.BoundingBox    `json:"boundingBox,omitempty"`
	Modes       []results.ModalResult    `json:"modes,omitempty"`
	Frames      []results.AnimationFrame `json:"frames,omitempty"`
}

// NewDocument fills the artifact names and bounds from vg. An empty geometry
// has no bounding box.
func NewDocument(vg *geometry.ViewGeometry) *Document {
	doc := &Document{
		Name:     vg.Name,
		Vertices: vg.VerticesName(),
		Edges:    vg.EdgesName(),
		Faces:    vg.FacesName(),
		Geometry: vg,
	}
	if bb, err := geometry.BoundingBoxOf(vg); err == nil {
		doc.BoundingBox = &bb
	}
	return doc
}

func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func WriteYAML(w io.Writer, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
