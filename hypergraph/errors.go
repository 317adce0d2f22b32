package hypergraph

import "fmt"

// DuplicateNodeError is returned by AddNode when the label is already
// registered.
type DuplicateNodeError struct {
	Label string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q already registered", e.Label)
}

// UnknownNodeError is returned when a referenced node label was never
// registered with AddNode.
type UnknownNodeError struct {
	Label string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %q", e.Label)
}

// ArityMismatchError is returned by AddRelation when the declared arity of
// the evaluation function does not match the number of input nodes.
type ArityMismatchError struct {
	Relation string
	Declared int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("relation %q: arity mismatch, function declares %d inputs, %d given", e.Relation, e.Declared, e.Got)
}
