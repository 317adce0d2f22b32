package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/grapheq/grapheq/hypergraph"
)

// Result is the outcome of one target in a batch resolution.
type Result struct {
	Value float64
	Trace Trace
}

// ResolveBatch resolves several targets from the same knowns, each in its
// own independent session. Sessions share nothing and the model is
// read-only, so they run concurrently; results are deterministic and
// identical to sequential Resolve calls.
//
// The first failing target aborts the batch and its error is returned.
func ResolveBatch(m *hypergraph.Model, knowns map[string]float64, targets []string, maxDepth int, opts ...Option) (map[string]Result, error) {
	results := make([]Result, len(targets))

	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			v, trace, err := Resolve(m, knowns, target, maxDepth, opts...)
			if err != nil {
				return err
			}
			results[i] = Result{Value: v, Trace: trace}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]Result, len(targets))
	for i, target := range targets {
		out[target] = results[i]
	}
	return out, nil
}
