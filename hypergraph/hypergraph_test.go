package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func identity() Func {
	return Func{NbIn: 1, F: func(in []float64) (float64, error) { return in[0], nil }}
}

func sum2() Func {
	return Func{NbIn: 2, F: func(in []float64) (float64, error) { return in[0] + in[1], nil }}
}

func TestAddNode(t *testing.T) {
	assert := require.New(t)
	m := New()

	a, err := m.AddNode("a")
	assert.NoError(err)
	assert.Equal("a", a.Label)

	b, err := m.AddNode("b")
	assert.NoError(err)
	assert.NotEqual(a.ID, b.ID)
	assert.Equal(2, m.NbNodes())

	_, err = m.AddNode("a")
	var dup *DuplicateNodeError
	assert.ErrorAs(err, &dup)
	assert.Equal("a", dup.Label)
	assert.Equal(2, m.NbNodes())

	_, err = m.AddNode("")
	assert.Error(err)
}

func TestAddRelationValidation(t *testing.T) {
	assert := require.New(t)
	m := New()
	_, err := m.AddNode("x")
	assert.NoError(err)
	_, err = m.AddNode("y")
	assert.NoError(err)

	// arity is validated at registration, not at evaluation
	err = m.AddRelation([]string{"x", "y"}, "y", identity(), "bad arity")
	var arity *ArityMismatchError
	assert.ErrorAs(err, &arity)
	assert.Equal(1, arity.Declared)
	assert.Equal(2, arity.Got)

	err = m.AddRelation(nil, "y", Func{NbIn: 0, F: func(in []float64) (float64, error) { return 1, nil }}, "nullary")
	assert.ErrorAs(err, &arity)

	err = m.AddRelation([]string{"z"}, "y", identity(), "unknown input")
	var unknown *UnknownNodeError
	assert.ErrorAs(err, &unknown)
	assert.Equal("z", unknown.Label)

	err = m.AddRelation([]string{"x"}, "z", identity(), "unknown output")
	assert.ErrorAs(err, &unknown)
	assert.Equal("z", unknown.Label)

	err = m.AddRelation([]string{"x"}, "y", Func{NbIn: 1}, "nil func")
	assert.Error(err)

	assert.Equal(0, m.NbRelations())

	err = m.AddRelation([]string{"x"}, "y", identity(), "ok")
	assert.NoError(err)
	assert.Equal(1, m.NbRelations())
}

func TestRelationsForOrder(t *testing.T) {
	assert := require.New(t)
	m := New()
	for _, l := range []string{"a", "b", "y"} {
		_, err := m.AddNode(l)
		assert.NoError(err)
	}

	// registration order is the observable contract: the solver tries
	// candidates in this order
	assert.NoError(m.AddRelation([]string{"a"}, "y", identity(), "first"))
	assert.NoError(m.AddRelation([]string{"a", "b"}, "y", sum2(), "second"))
	assert.NoError(m.AddRelation([]string{"b"}, "y", identity(), "third"))
	assert.NoError(m.AddRelation([]string{"y"}, "a", identity(), "inverse"))

	rs := m.RelationsFor("y")
	assert.Len(rs, 3)
	assert.Equal("first", rs[0].Label)
	assert.Equal("second", rs[1].Label)
	assert.Equal("third", rs[2].Label)

	rs = m.RelationsFor("a")
	assert.Len(rs, 1)
	assert.Equal("inverse", rs[0].Label)

	assert.Empty(m.RelationsFor("b"))
	assert.Empty(m.RelationsFor("nope"))
}

func TestNodeLookup(t *testing.T) {
	assert := require.New(t)
	m := New()
	n, err := m.AddNode("theta")
	assert.NoError(err)

	got, ok := m.Node("theta")
	assert.True(ok)
	assert.Equal(n, got)
	assert.Equal(n, m.NodeByID(n.ID))

	_, ok = m.Node("missing")
	assert.False(ok)
}
