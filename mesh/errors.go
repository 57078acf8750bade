package mesh

import (
	"errors"
	"fmt"
)

// ErrDanglingNodeReference is matched by every DanglingNodeError.
var ErrDanglingNodeReference = errors.New("dangling node reference")

// ErrDuplicateNodeID reports two nodes sharing an id.
var ErrDuplicateNodeID = errors.New("duplicate node id")

// DanglingNodeError names the element holding a node id that is not in the
// mesh. ElementID is -1 when the lookup was not made on behalf of an element.
type DanglingNodeError struct {
	ElementID int
	NodeID    int
}

func (e *DanglingNodeError) Error() string {
	if e.ElementID < 0 {
		return fmt.Sprintf("%v: node %d", ErrDanglingNodeReference, e.NodeID)
	}
	return fmt.Sprintf("%v: element %d references missing node %d",
		ErrDanglingNodeReference, e.ElementID, e.NodeID)
}

func (e *DanglingNodeError) Unwrap() error { return ErrDanglingNodeReference }
