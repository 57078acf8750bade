package results

import (
	"errors"
	"fmt"
)

var (
	ErrNoModalResults      = errors.New("no modal results")
	ErrMalformedModeRecord = errors.New("malformed mode record")
	ErrResultMeshMismatch  = errors.New("results do not match mesh")
)

// MalformedModeError names the mode subgroup that could not be decoded.
type MalformedModeError struct {
	Group  string
	Reason string
	Err    error
}

func (e *MalformedModeError) Error() string {
	msg := fmt.Sprintf("%v %q: %s", ErrMalformedModeRecord, e.Group, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedModeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedModeRecord}
	}
	return []error{ErrMalformedModeRecord, e.Err}
}

// MeshMismatchError reports a displacement field sized for a different mesh.
type MeshMismatchError struct {
	Group string
	Got   int // nodes in the results
	Want  int // nodes in the mesh
}

func (e *MeshMismatchError) Error() string {
	return fmt.Sprintf("%v: mode %q has %d nodes, mesh has %d",
		ErrResultMeshMismatch, e.Group, e.Got, e.Want)
}

func (e *MeshMismatchError) Unwrap() error { return ErrResultMeshMismatch }
