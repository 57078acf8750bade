package results

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/mat"

	"github.com/chuongmep/adapy/geometry"
	"github.com/chuongmep/adapy/mesh"
	"github.com/chuongmep/adapy/utils"
)

// ModalResult is one eigen-solution: its displacement field is aligned to the
// mesh node order.
type ModalResult struct {
	Name         string       `json:"name"`
	Mode         int          `json:"mode"`
	Frequency    float64      `json:"frequency"`
	Displacement []mgl32.Vec3 `json:"displacement"`
}

// AnimationFrame holds displaced node positions for one mode.
type AnimationFrame struct {
	Mode      int          `json:"mode"`
	Frequency float64      `json:"frequency"`
	Positions []mgl32.Vec3 `json:"positions"`
}

// Reader decodes modal results. A nil Logger uses the standard logger.
type Reader struct {
	Logger *log.Logger
}

func NewReader(logger *log.Logger) *Reader {
	return &Reader{Logger: logger}
}

func (r *Reader) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// ReadModes decodes every mode subgroup in container order. numNodes is the
// node count of the mesh the results belong to.
func (r *Reader) ReadModes(c Group, numNodes int) ([]ModalResult, error) {
	modes, err := c.Group(ModalResultsGroup)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: group %q missing", ErrNoModalResults, ModalResultsGroup)
		}
		return nil, err
	}
	names, err := modes.Members()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: group %q is empty", ErrNoModalResults, ModalResultsGroup)
	}
	results := make([]ModalResult, 0, len(names))
	for _, name := range names {
		mr, err := r.readMode(modes, name, numNodes)
		if err != nil {
			return nil, err
		}
		r.logf("mode %d: frequency %g", mr.Mode, mr.Frequency)
		results = append(results, mr)
	}
	return results, nil
}

func (r *Reader) readMode(modes Group, name string, numNodes int) (mr ModalResult, err error) {
	g, err := modes.Group(name)
	if err != nil {
		return mr, &MalformedModeError{Group: name, Reason: "unreadable group", Err: err}
	}
	raw, err := g.Float64s(DisplacementPath)
	if err != nil {
		return mr, &MalformedModeError{Group: name, Reason: "missing displacement dataset", Err: err}
	}
	if len(raw) == 0 || len(raw)%DOFsPerNode != 0 {
		return mr, &MalformedModeError{Group: name,
			Reason: fmt.Sprintf("%d values do not form rows of %d DOFs", len(raw), DOFsPerNode)}
	}
	nodes := len(raw) / DOFsPerNode
	if nodes != numNodes {
		return mr, &MeshMismatchError{Group: name, Got: nodes, Want: numNodes}
	}
	mode, err := g.IntAttr(ModeNumberAttr)
	if err != nil {
		return mr, &MalformedModeError{Group: name, Reason: "missing mode number", Err: err}
	}
	freq, err := g.FloatAttr(FrequencyAttr)
	if err != nil {
		return mr, &MalformedModeError{Group: name, Reason: "missing frequency", Err: err}
	}
	return ModalResult{
		Name:         name,
		Mode:         int(mode),
		Frequency:    freq,
		Displacement: translations(raw, nodes),
	}, nil
}

// translations reshapes the row-major DOF block and drops the discarded
// columns.
func translations(raw []float64, nodes int) []mgl32.Vec3 {
	var (
		DOFs = mat.NewDense(nodes, DOFsPerNode, raw)
		U    = utils.MatDeleteCols(DOFs, DroppedDOFsFrom, DroppedDOFsTo)
		disp = make([]mgl32.Vec3, nodes)
	)
	for i := range disp {
		row := U.RawRowView(i)
		disp[i] = mgl32.Vec3{float32(row[0]), float32(row[1]), float32(row[2])}
	}
	return disp
}

// Animate adds each mode's displacement to the rest positions.
func (r *Reader) Animate(rest []mgl32.Vec3, modes []ModalResult) ([]AnimationFrame, error) {
	frames := make([]AnimationFrame, len(modes))
	for k, mr := range modes {
		if len(mr.Displacement) != len(rest) {
			return nil, &MeshMismatchError{Group: mr.Name, Got: len(mr.Displacement), Want: len(rest)}
		}
		pos := make([]mgl32.Vec3, len(rest))
		for i, p := range rest {
			pos[i] = p.Add(mr.Displacement[i])
		}
		frames[k] = AnimationFrame{Mode: mr.Mode, Frequency: mr.Frequency, Positions: pos}
	}
	return frames, nil
}

// Read returns the modes of c and their frames, index aligned, for mesh m.
func (r *Reader) Read(c Group, m *mesh.Mesh) ([]ModalResult, []AnimationFrame, error) {
	modes, err := r.ReadModes(c, m.NumNodes())
	if err != nil {
		return nil, nil, err
	}
	frames, err := r.Animate(geometry.Vertices(m), modes)
	if err != nil {
		return nil, nil, err
	}
	return modes, frames, nil
}

// ReadFile opens the container at path, reads it against m and releases it
// on every path out.
func (r *Reader) ReadFile(path string, open Opener, m *mesh.Mesh) (modes []ModalResult, frames []AnimationFrame, err error) {
	c, err := open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open results %s: %w", path, err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			modes, frames, err = nil, nil, cerr
		}
	}()
	return r.Read(c, m)
}

// Oscillate samples one period of a mode as steps frames:
// rest + scale*sin(2*pi*k/steps)*displacement.
func Oscillate(rest []mgl32.Vec3, mr ModalResult, steps int, scale float64) ([]AnimationFrame, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("oscillation needs a positive step count, got %d", steps)
	}
	if len(mr.Displacement) != len(rest) {
		return nil, &MeshMismatchError{Group: mr.Name, Got: len(mr.Displacement), Want: len(rest)}
	}
	frames := make([]AnimationFrame, steps)
	for k := range frames {
		amp := float32(scale * math.Sin(2*math.Pi*float64(k)/float64(steps)))
		pos := make([]mgl32.Vec3, len(rest))
		for i, p := range rest {
			pos[i] = p.Add(mr.Displacement[i].Mul(amp))
		}
		frames[k] = AnimationFrame{Mode: mr.Mode, Frequency: mr.Frequency, Positions: pos}
	}
	return frames, nil
}
