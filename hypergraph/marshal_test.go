package hypergraph

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/grapheq/grapheq"
)

func buildTestModel(t *testing.T) *Model {
	t.Helper()
	m := New()
	for _, l := range []string{"a", "b", "y"} {
		_, err := m.AddNode(l)
		require.NoError(t, err)
	}
	require.NoError(t, m.AddRelation([]string{"a", "b"}, "y", sum2(), "y(a,b)"))
	require.NoError(t, m.AddRelation([]string{"y", "b"}, "a", sum2(), "a(y,b)"))
	return m
}

func TestTopologyRoundTrip(t *testing.T) {
	assert := require.New(t)
	m := buildTestModel(t)

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	assert.NoError(err)

	got, err := ReadTopologyFrom(&buf)
	assert.NoError(err)

	assert.Equal(grapheq.Version.String(), got.Version)
	assert.Equal([]string{"a", "b", "y"}, got.Nodes)
	assert.Len(got.Relations, 2)
	assert.Equal(RelationTopology{Label: "y(a,b)", Inputs: []string{"a", "b"}, Output: "y"}, got.Relations[0])
	assert.Equal(RelationTopology{Label: "a(y,b)", Inputs: []string{"y", "b"}, Output: "a"}, got.Relations[1])
}

func TestTopologyVersionCheck(t *testing.T) {
	assert := require.New(t)

	encode := func(version string) *bytes.Buffer {
		enc, err := cbor.CoreDetEncOptions().EncMode()
		assert.NoError(err)
		buf := new(bytes.Buffer)
		assert.NoError(enc.NewEncoder(buf).Encode(Topology{Version: version, Nodes: []string{"a"}}))
		return buf
	}

	// different major version is rejected
	_, err := ReadTopologyFrom(encode("999.0.0"))
	assert.ErrorContains(err, "incompatible topology version")

	// unparseable version is rejected
	_, err = ReadTopologyFrom(encode("not-a-version"))
	assert.ErrorContains(err, "when parsing grapheq version")

	// same major, different minor is accepted with a warning
	v := grapheq.Version
	v.Patch++
	got, err := ReadTopologyFrom(encode(v.String()))
	assert.NoError(err)
	assert.Equal([]string{"a"}, got.Nodes)
}
