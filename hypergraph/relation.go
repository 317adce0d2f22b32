package hypergraph

import "errors"

// ErrOutOfDomain signals that a relation's arguments fall outside its
// mathematical domain (division by zero, negative radicand, no admissible
// root). The solver treats it as a per-relation failure and falls back to
// the next candidate relation for the same node.
var ErrOutOfDomain = errors.New("argument outside relation domain")

// Func is a pure evaluation function together with its declared arity.
//
// F receives exactly NbIn arguments in the order declared at registration
// and returns a single value. When the arguments are outside the function's
// domain it must return ErrOutOfDomain (possibly wrapped) rather than an
// arbitrary value.
//
// For relations inverting a multi-root equation, F must itself select
// exactly one root before returning. The selection must be deterministic and
// documented on the relation; when no admissible root exists F returns
// ErrOutOfDomain, never a complex or out-of-range stand-in.
type Func struct {
	NbIn int
	F    func(in []float64) (float64, error)
}

// Relation is a hyperedge: it derives the value of Output from the values of
// Inputs, in declared order, through Fn. Label identifies the relation in
// diagnostics and derivation traces.
type Relation struct {
	Inputs []uint32
	Output uint32
	Fn     Func
	Label  string
}
