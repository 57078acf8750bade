package InputParameters

import (
	"bytes"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewParametersParse(t *testing.T) {
	fileInput := []byte(`
Title: Frame model
MeshName: frame
Format: stl
UniqueEdges: true
Animation:
  Steps: 24
`)
	vp := NewViewParameters()
	require.NoError(t, vp.Parse(fileInput))
	assert.Equal(t, "Frame model", vp.Title)
	assert.Equal(t, "frame", vp.MeshName)
	assert.Equal(t, "stl", vp.Format)
	assert.True(t, vp.UniqueEdges)
	assert.False(t, vp.ConvertBeamToShell)
	assert.Equal(t, 24, vp.Animation.Steps)
	// Scale was not in the file and keeps its default
	assert.Equal(t, 1., vp.Animation.Scale)

	var buf bytes.Buffer
	vp.Print(&buf)
	assert.Contains(t, buf.String(), "[stl]")
	assert.Contains(t, buf.String(), "= Animation Steps")
}

func TestViewParametersDefaults(t *testing.T) {
	vp := NewViewParameters()
	require.NoError(t, vp.Parse([]byte("Title: empty\n")))
	assert.Equal(t, "json", vp.Format)
	assert.Equal(t, 0, vp.Animation.Steps)
}

func TestViewParametersInvalid(t *testing.T) {
	assert.Error(t, NewViewParameters().Parse([]byte("Animation:\n  Steps: -2\n")))
	assert.Error(t, NewViewParameters().Parse([]byte("Format: [json\n")))
}

func TestViewParametersKeys(t *testing.T) {
	vp := NewViewParameters()
	vp.MeshName = "frame"
	vp.Animation.Steps = 12
	data, err := yaml.Marshal(vp)
	require.NoError(t, err)
	assert.Contains(t, string(data), "MeshName: frame\n")
	assert.Contains(t, string(data), "ConvertBeamToShell: false\n")
	assert.Contains(t, string(data), "Animation:\n  Scale: 1\n  Steps: 12\n")

	parsed := NewViewParameters()
	require.NoError(t, parsed.Parse(data))
	assert.Equal(t, vp, parsed)
}
