// Package solver resolves a target node of a hypergraph.Model from a set of
// known values.
//
// Resolution is a depth-bounded recursive search with first-success
// semantics: candidate relations for a node are tried in registration order
// and the first chain of evaluations reaching known leaves wins. The search
// is deliberately not exhaustive; callers control the outcome by controlling
// relation registration order.
package solver

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/grapheq/grapheq/debug"
	"github.com/grapheq/grapheq/hypergraph"
)

// Resolve computes the value of target from knowns.
//
// knowns assigns values to zero or more registered nodes; maxDepth bounds the
// longest chain of relation evaluations from the target down to known leaves
// (0 means the target itself must already be known). Known values are
// authoritative: a node present in knowns is never recomputed.
//
// On success the returned Trace lists the relations evaluated, in evaluation
// order (leaves first, the target's relation last). Resolution failures are
// reported as a *UnresolvedNodeError naming the target; construction-level
// misuse (unknown target or known label) as a *hypergraph.UnknownNodeError.
//
// Each call runs an independent session; a Model may be shared by concurrent
// Resolve calls.
func Resolve(m *hypergraph.Model, knowns map[string]float64, target string, maxDepth int, opts ...Option) (float64, Trace, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return 0, Trace{}, fmt.Errorf("apply solver option: %w", err)
	}
	if maxDepth < 0 {
		return 0, Trace{}, fmt.Errorf("negative max depth %d", maxDepth)
	}
	targetNode, ok := m.Node(target)
	if !ok {
		return 0, Trace{}, &hypergraph.UnknownNodeError{Label: target}
	}

	s := newSession(m, cfg)
	for label, v := range knowns {
		n, ok := m.Node(label)
		if !ok {
			return 0, Trace{}, &hypergraph.UnknownNodeError{Label: label}
		}
		s.values[n.ID] = v
		s.resolved.Set(uint(n.ID))
	}

	log := cfg.Logger
	log.Debug().Str("target", target).Int("maxDepth", maxDepth).Int("nbKnowns", len(knowns)).Msg("resolving")

	v, err := s.resolveNode(targetNode.ID, maxDepth)
	if err != nil {
		// branch-local failures (depth bound hit on the target itself) fold
		// into the single failure shape Resolve reports
		if _, ok := err.(*UnresolvedNodeError); !ok {
			err = &UnresolvedNodeError{Node: target, cause: err}
		}
		log.Debug().Err(err).Str("target", target).Msg("resolution failed")
		return 0, Trace{}, err
	}

	trace := s.buildTrace(targetNode.ID)
	log.Debug().Str("target", target).Float64("value", v).Int("nbSteps", len(trace.Steps)).Msg("resolved")
	return v, trace, nil
}

// session holds the ephemeral state of one Resolve call. It is discarded
// when the call returns; nothing leaks into the next session.
type session struct {
	m *hypergraph.Model

	values     []float64
	resolved   *bitset.BitSet
	inProgress *bitset.BitSet

	// provenance[nodeID] is the id of the relation that produced the node,
	// -1 for knowns and unresolved nodes.
	provenance []int32

	log  zerolog.Logger
	prof recorder
}

// recorder is the subset of profile.Profile the session needs; nil checks
// stay in one place.
type recorder interface {
	RecordAttempt(relation string, failed bool)
}

func newSession(m *hypergraph.Model, cfg Config) *session {
	nb := uint(m.NbNodes())
	s := &session{
		m:          m,
		values:     make([]float64, nb),
		resolved:   bitset.New(nb),
		inProgress: bitset.New(nb),
		provenance: make([]int32, nb),
		log:        cfg.Logger,
	}
	for i := range s.provenance {
		s.provenance[i] = -1
	}
	if cfg.Profile != nil {
		s.prof = cfg.Profile
	}
	return s
}

// resolveNode resolves the node id with depth relation evaluations remaining.
//
// Failures below the top level are local: the caller abandons the current
// relation and tries its next candidate. Only when every candidate for a
// node fails does the node itself fail, with a *UnresolvedNodeError wrapping
// the last branch failure.
func (s *session) resolveNode(id uint32, depth int) (float64, error) {
	if s.resolved.Test(uint(id)) {
		return s.values[id], nil
	}
	if s.inProgress.Test(uint(id)) {
		// a forward/inverse relation pair points back at this node on the
		// current path; cut the branch instead of recursing forever
		return 0, ErrCycleDetected
	}
	if depth == 0 {
		return 0, ErrDepthExceeded
	}

	s.inProgress.Set(uint(id))
	defer s.inProgress.Clear(uint(id))

	var lastErr error
	for _, rID := range s.m.Producing(id) {
		r := s.m.Relation(rID)

		in := make([]float64, len(r.Inputs))
		inputsOK := true
		for i, inID := range r.Inputs {
			v, err := s.resolveNode(inID, depth-1)
			if err != nil {
				lastErr = err
				inputsOK = false
				break
			}
			in[i] = v
		}
		if !inputsOK {
			s.recordAttempt(r.Label, true)
			continue
		}

		v, err := s.evalRelation(r, in)
		if err != nil {
			s.recordAttempt(r.Label, true)
			s.log.Debug().Str("relation", r.Label).Err(err).Msg("relation evaluation failed")
			lastErr = err
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.recordAttempt(r.Label, true)
			lastErr = fmt.Errorf("relation %q: non-finite result", r.Label)
			continue
		}

		s.recordAttempt(r.Label, false)
		s.values[id] = v
		s.resolved.Set(uint(id))
		s.provenance[id] = int32(rID)
		return v, nil
	}

	return 0, &UnresolvedNodeError{Node: s.m.NodeByID(id).Label, cause: lastErr}
}

// evalRelation invokes the relation's function, converting a panic in the
// user-supplied code into a relation failure so the search can fall back to
// the next candidate.
func (s *session) evalRelation(r *hypergraph.Relation, in []float64) (v float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error().Str("relation", r.Label).Interface("panic", rec).Str("stack", debug.Stack()).Msg("relation panicked")
			err = fmt.Errorf("relation %q panicked: %v", r.Label, rec)
		}
	}()
	return r.Fn.F(in)
}

// buildTrace reconstructs the derivation chain of the target by walking
// provenance pointers. Relations evaluated during abandoned branches do not
// appear: the trace names only the relations the answer actually rests on,
// inputs before the relation consuming them.
func (s *session) buildTrace(target uint32) Trace {
	var t Trace
	visited := bitset.New(uint(s.m.NbNodes()))
	var walk func(id uint32)
	walk = func(id uint32) {
		if visited.Test(uint(id)) {
			return
		}
		visited.Set(uint(id))
		rID := s.provenance[id]
		if rID < 0 {
			// known leaf
			return
		}
		r := s.m.Relation(uint32(rID))
		in := make([]float64, len(r.Inputs))
		for i, inID := range r.Inputs {
			walk(inID)
			in[i] = s.values[inID]
		}
		t.Steps = append(t.Steps, s.step(r, in, s.values[id]))
	}
	walk(target)
	return t
}

func (s *session) step(r *hypergraph.Relation, in []float64, v float64) Step {
	args := make([]Arg, len(r.Inputs))
	for i, inID := range r.Inputs {
		args[i] = Arg{Label: s.m.NodeByID(inID).Label, Value: in[i]}
	}
	return Step{
		Relation: r.Label,
		Inputs:   args,
		Output:   s.m.NodeByID(r.Output).Label,
		Value:    v,
	}
}

func (s *session) recordAttempt(relation string, failed bool) {
	if s.prof != nil {
		s.prof.RecordAttempt(relation, failed)
	}
}
