package solver

import (
	"errors"
	"fmt"
)

// ErrCycleDetected cuts a search branch that reached a node already being
// resolved on the current path. It is local to one branch attempt and only
// surfaces as the wrapped cause of a *UnresolvedNodeError when every branch
// for a node failed this way.
var ErrCycleDetected = errors.New("cycle detected")

// ErrDepthExceeded cuts a search branch that exhausted the depth bound
// before reaching known leaves. Like ErrCycleDetected it is branch-local and
// only observable through the wrapped cause of a *UnresolvedNodeError.
var ErrDepthExceeded = errors.New("max search depth exceeded")

// UnresolvedNodeError is the failure Resolve returns when the target is
// unreachable from the known values within the depth bound. Node names the
// node that could not be resolved; the wrapped cause is the failure of the
// last candidate branch tried.
type UnresolvedNodeError struct {
	Node  string
	cause error
}

func (e *UnresolvedNodeError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("node %q cannot be resolved: no relation produces it", e.Node)
	}
	return fmt.Sprintf("node %q cannot be resolved: %v", e.Node, e.cause)
}

func (e *UnresolvedNodeError) Unwrap() error {
	return e.cause
}
