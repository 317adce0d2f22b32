// Package hypergraph defines the relation hypergraph at the core of grapheq:
// nodes are named quantities, relations are pure functions deriving one node
// from several others.
//
// A Model is built once through AddNode and AddRelation and is read-only
// afterwards; resolution never mutates it, so a single Model may be shared
// across concurrent solver sessions without synchronization.
package hypergraph

import (
	"fmt"
)

// Node is a named quantity in the model. ID is the node's index in the
// model's node table and is stable for the lifetime of the model.
type Node struct {
	ID    uint32
	Label string
}

// Model is the registry of nodes and relations, indexed by output node.
//
// Relation registration order is part of the observable contract: the solver
// tries candidate relations for a node in the order they were added.
type Model struct {
	nodes     []Node
	index     map[string]uint32
	relations []Relation

	// producing[nodeID] lists the ids of relations whose output is nodeID,
	// in registration order.
	producing [][]uint32
}

// New returns an empty model.
func New() *Model {
	return &Model{
		index: make(map[string]uint32),
	}
}

// AddNode registers a new named quantity.
//
// It returns a *DuplicateNodeError if the label is already registered.
func (m *Model) AddNode(label string) (Node, error) {
	if label == "" {
		return Node{}, fmt.Errorf("empty node label")
	}
	if _, ok := m.index[label]; ok {
		return Node{}, &DuplicateNodeError{Label: label}
	}
	n := Node{ID: uint32(len(m.nodes)), Label: label}
	m.nodes = append(m.nodes, n)
	m.index[label] = n.ID
	m.producing = append(m.producing, nil)
	return n, nil
}

// AddRelation registers a relation deriving output from inputs through fn.
//
// The declared arity of fn must match len(inputs); this is validated here,
// never at evaluation time. All referenced labels must have been registered
// with AddNode beforehand.
func (m *Model) AddRelation(inputs []string, output string, fn Func, label string) error {
	if fn.F == nil {
		return fmt.Errorf("relation %q: nil evaluation function", label)
	}
	if fn.NbIn < 1 || fn.NbIn != len(inputs) {
		return &ArityMismatchError{Relation: label, Declared: fn.NbIn, Got: len(inputs)}
	}
	outID, ok := m.index[output]
	if !ok {
		return &UnknownNodeError{Label: output}
	}
	inIDs := make([]uint32, len(inputs))
	for i, in := range inputs {
		id, ok := m.index[in]
		if !ok {
			return &UnknownNodeError{Label: in}
		}
		inIDs[i] = id
	}
	rID := uint32(len(m.relations))
	m.relations = append(m.relations, Relation{
		Inputs: inIDs,
		Output: outID,
		Fn:     fn,
		Label:  label,
	})
	m.producing[outID] = append(m.producing[outID], rID)
	return nil
}

// Node returns the node registered under label.
func (m *Model) Node(label string) (Node, bool) {
	id, ok := m.index[label]
	if !ok {
		return Node{}, false
	}
	return m.nodes[id], true
}

// NodeByID returns the node with the given id. It panics if id is out of
// range; ids always come from the model itself.
func (m *Model) NodeByID(id uint32) Node {
	return m.nodes[id]
}

// RelationsFor returns the relations that can produce the given node, in
// registration order. The returned slice is a copy.
func (m *Model) RelationsFor(label string) []Relation {
	id, ok := m.index[label]
	if !ok {
		return nil
	}
	rs := make([]Relation, len(m.producing[id]))
	for i, rID := range m.producing[id] {
		rs[i] = m.relations[rID]
	}
	return rs
}

// Producing returns the ids of the relations whose output is the given node,
// in registration order. The returned slice must not be modified.
func (m *Model) Producing(id uint32) []uint32 {
	return m.producing[id]
}

// Relation returns the relation with the given id.
func (m *Model) Relation(id uint32) *Relation {
	return &m.relations[id]
}

// NbNodes returns the number of registered nodes.
func (m *Model) NbNodes() int {
	return len(m.nodes)
}

// NbRelations returns the number of registered relations.
func (m *Model) NbRelations() int {
	return len(m.relations)
}
