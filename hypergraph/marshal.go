package hypergraph

import (
	"bytes"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/grapheq/grapheq"
	"github.com/grapheq/grapheq/logger"
)

// Topology is the serializable structure of a model: node labels and relation
// wiring. Evaluation functions are code, not data, and are never serialized;
// a Topology is meant for presentation collaborators rendering the model as
// a diagram, not for reconstructing a runnable Model.
type Topology struct {
	Version   string
	Nodes     []string
	Relations []RelationTopology
}

// RelationTopology describes one hyperedge of a serialized model.
type RelationTopology struct {
	Label  string
	Inputs []string
	Output string
}

// Topology returns the serializable structure of the model.
func (m *Model) Topology() Topology {
	t := Topology{
		Version:   grapheq.Version.String(),
		Nodes:     make([]string, len(m.nodes)),
		Relations: make([]RelationTopology, len(m.relations)),
	}
	for i, n := range m.nodes {
		t.Nodes[i] = n.Label
	}
	for i, r := range m.relations {
		inputs := make([]string, len(r.Inputs))
		for j, id := range r.Inputs {
			inputs[j] = m.nodes[id].Label
		}
		t.Relations[i] = RelationTopology{
			Label:  r.Label,
			Inputs: inputs,
			Output: m.nodes[r.Output].Label,
		}
	}
	return t
}

// WriteTo serializes the model topology to w using deterministic CBOR
// encoding. It implements io.WriterTo.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	buf := new(bytes.Buffer)
	if err := enc.NewEncoder(buf).Encode(m.Topology()); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// ReadTopologyFrom deserializes a model topology written by WriteTo and
// validates its version header: topologies written by a different major
// version of the engine are rejected, minor mismatches only log a warning.
func ReadTopologyFrom(r io.Reader) (Topology, error) {
	var t Topology
	dm, err := cbor.DecOptions{
		MaxArrayElements: 134217728,
		MaxMapPairs:      134217728,
	}.DecMode()
	if err != nil {
		return Topology{}, err
	}
	if err := dm.NewDecoder(r).Decode(&t); err != nil {
		return Topology{}, err
	}
	if err := t.checkSerializationHeader(); err != nil {
		return Topology{}, err
	}
	return t, nil
}

// checkSerializationHeader parses the engine version header and errors for
// illegal or incompatible values.
func (t *Topology) checkSerializationHeader() error {
	binaryVersion := grapheq.Version
	objectVersion, err := semver.Parse(t.Version)
	if err != nil {
		return fmt.Errorf("when parsing grapheq version: %w", err)
	}
	if binaryVersion.Major != objectVersion.Major {
		return fmt.Errorf("incompatible topology version %s, engine version %s", objectVersion, binaryVersion)
	}
	if binaryVersion.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", binaryVersion.String()).Str("object", objectVersion.String()).Msg("grapheq version (binary) mismatch with topology. there are no guarantees on compatibility")
	}
	return nil
}
