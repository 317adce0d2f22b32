package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grapheq/grapheq/hypergraph"
	"github.com/grapheq/grapheq/profile"
)

func TestResolveWithProfile(t *testing.T) {
	assert := require.New(t)
	m := hypergraph.New()
	for _, l := range []string{"x", "z"} {
		_, err := m.AddNode(l)
		assert.NoError(err)
	}
	assert.NoError(m.AddRelation([]string{"x"}, "z", fn(1, func(in []float64) (float64, error) {
		return 0, hypergraph.ErrOutOfDomain
	}), "always fails"))
	assert.NoError(m.AddRelation([]string{"x"}, "z", fn(1, func(in []float64) (float64, error) {
		return in[0], nil
	}), "succeeds"))

	p := profile.Start(profile.WithNoOutput())
	_, _, err := Resolve(m, map[string]float64{"x": 1}, "z", 1, WithProfile(p))
	assert.NoError(err)
	p.Stop()

	// one failed attempt on the first candidate, one successful on the second
	assert.Equal(2, p.NbAttempts())
}
