// Package grapheq provides a multi-directional constraint-resolution engine
// over hypergraphs of named quantities and equations.
//
// A model is a hypergraph: nodes are named quantities, relations are pure
// functions deriving one node from several others. Governing equations are
// registered once per variable they can be solved for, so the same equation
// participates in the search in every direction. Given a subset of known
// values and a target node, the solver finds a chain of relation evaluations
// producing the target, bounded by a maximum search depth, and reports the
// derivation trace alongside the resolved value.
//
// The engine is domain-agnostic; see std/beam for an example catalogue of
// Timoshenko beam-theory relations built on top of it.
package grapheq

import (
	"github.com/blang/semver/v4"
)

// Version of the grapheq engine. Serialized topologies and traces embed it
// and readers reject incompatible major versions.
var Version = semver.MustParse("0.3.0")
