package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grapheq/grapheq/profile"
	"github.com/grapheq/grapheq/solver"
	"github.com/grapheq/grapheq/std/beam"
)

var (
	fKnowns    []string
	fTarget    string
	fDepth     int
	fTraceOut  string
	fProfile   bool
	fShowTrace bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Resolve a quantity of the beam catalogue from known values",
	Example: `  grapheq solve --target theta --depth 10 \
    --known point_load=1000 --known youngs_modulus=200e9 \
    --known moment_of_inertia=1e-6 --known length=2.0 \
    --known kappa=0.8333333333333334 --known shear_modulus=80e9 \
    --known area=1e-4`,
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	// numeric text parsing happens here; the engine only ever sees numbers
	knowns := make(map[string]float64, len(fKnowns))
	for _, kv := range fKnowns {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --known %q, expected name=value", kv)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for known %q: %w", name, err)
		}
		knowns[name] = v
	}
	if fTarget == "" {
		return fmt.Errorf("missing --target")
	}

	m, err := beam.NewModel()
	if err != nil {
		return err
	}

	opts := []solver.Option{}
	var p *profile.Profile
	if fProfile {
		p = profile.Start()
		opts = append(opts, solver.WithProfile(p))
	}

	v, trace, err := solver.Resolve(m, knowns, fTarget, fDepth, opts...)
	if p != nil {
		p.Stop()
		fmt.Fprint(os.Stderr, p.Top())
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s = %g\n", fTarget, v)
	if fShowTrace {
		fmt.Print(trace.String())
	}

	if fTraceOut != "" {
		f, err := os.Create(fTraceOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := trace.WriteTo(f); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	return nil
}

func init() {
	solveCmd.Flags().StringArrayVar(&fKnowns, "known", nil, "known quantity as name=value (repeatable)")
	solveCmd.Flags().StringVar(&fTarget, "target", "", "quantity to resolve")
	solveCmd.Flags().IntVar(&fDepth, "depth", 10, "maximum search depth")
	solveCmd.Flags().StringVar(&fTraceOut, "trace-out", "", "write the derivation trace to this file (CBOR)")
	solveCmd.Flags().BoolVar(&fProfile, "profile", false, "profile relation attempts and print a summary")
	solveCmd.Flags().BoolVar(&fShowTrace, "trace", true, "print the derivation trace")
	rootCmd.AddCommand(solveCmd)
}
