package solver

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/grapheq/grapheq"
	"github.com/grapheq/grapheq/logger"
)

// Arg is one input of a derivation step: a node label with the value it held
// when the relation was evaluated.
type Arg struct {
	Label string
	Value float64
}

// Step is one relation evaluation in a derivation trace.
type Step struct {
	Relation string
	Inputs   []Arg
	Output   string
	Value    float64
}

// Trace is the ordered record of the relations a resolved value rests on,
// inputs before the relation consuming them. It is empty when the target was
// already known. The shape is meant for presentation collaborators rendering
// a derivation diagram.
type Trace struct {
	Steps []Step
}

// String renders the trace as one line per step, for logs and CLI output.
func (t Trace) String() string {
	var sbb strings.Builder
	for i, s := range t.Steps {
		fmt.Fprintf(&sbb, "%d. %s: %s = %v  (", i+1, s.Relation, s.Output, s.Value)
		for j, a := range s.Inputs {
			if j > 0 {
				sbb.WriteString(", ")
			}
			fmt.Fprintf(&sbb, "%s = %v", a.Label, a.Value)
		}
		sbb.WriteString(")\n")
	}
	return sbb.String()
}

// tracePayload is the serialized envelope of a trace.
type tracePayload struct {
	Version string
	Steps   []Step
}

// WriteTo serializes the trace to w using deterministic CBOR encoding. It
// implements io.WriterTo.
func (t Trace) WriteTo(w io.Writer) (int64, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	buf := new(bytes.Buffer)
	payload := tracePayload{
		Version: grapheq.Version.String(),
		Steps:   t.Steps,
	}
	if err := enc.NewEncoder(buf).Encode(payload); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// ReadTraceFrom deserializes a trace written by WriteTo and validates its
// version header: traces written by a different major version of the engine
// are rejected, minor mismatches only log a warning.
func ReadTraceFrom(r io.Reader) (Trace, error) {
	dm, err := cbor.DecOptions{
		MaxArrayElements: 134217728,
		MaxMapPairs:      134217728,
	}.DecMode()
	if err != nil {
		return Trace{}, err
	}
	var payload tracePayload
	if err := dm.NewDecoder(r).Decode(&payload); err != nil {
		return Trace{}, err
	}

	binaryVersion := grapheq.Version
	objectVersion, err := semver.Parse(payload.Version)
	if err != nil {
		return Trace{}, fmt.Errorf("when parsing grapheq version: %w", err)
	}
	if binaryVersion.Major != objectVersion.Major {
		return Trace{}, fmt.Errorf("incompatible trace version %s, engine version %s", objectVersion, binaryVersion)
	}
	if binaryVersion.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", binaryVersion.String()).Str("object", objectVersion.String()).Msg("grapheq version (binary) mismatch with trace. there are no guarantees on compatibility")
	}

	return Trace{Steps: payload.Steps}, nil
}
