// Package profile generates pprof compatible profiles of grapheq resolution
// sessions.
//
// A profile counts relation evaluation attempts per relation, split into
// total attempts and failed attempts (domain errors, unresolved inputs).
// Attach a session to a solver call with solver.WithProfile.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/pprof/profile"

	"github.com/grapheq/grapheq/logger"
)

// Profile represents an active relation-attempt profiling session.
type Profile struct {
	// defaults to ./grapheq.pprof
	// if blank, profile is not written to disk
	filePath string

	// actual pprof profile struct
	// details on pprof format: https://github.com/google/pprof/blob/main/proto/README.md
	pprof profile.Profile

	mu      sync.Mutex
	samples map[string]*profile.Sample

	stopped bool
}

// Option defines configuration Options for Profile.
type Option func(*Profile)

// WithPath controls the profile destination file. If blank, profile is not written.
//
// Defaults to ./grapheq.pprof.
func WithPath(path string) Option {
	return func(p *Profile) {
		p.filePath = path
	}
}

// WithNoOutput indicates that the profile is not going to be written to disk.
//
// This is equivalent to WithPath("")
func WithNoOutput() Option {
	return func(p *Profile) {
		p.filePath = ""
	}
}

// Start creates a new profiling session. When Stop() is called, the session
// may be serialized to disk as a pprof compatible file (see WithPath option).
//
// A session may be shared by concurrent solver calls; sample recording is
// synchronized.
func Start(options ...Option) *Profile {
	p := &Profile{
		filePath: filepath.Join(".", "grapheq.pprof"),
		samples:  make(map[string]*profile.Sample),
	}
	p.pprof.SampleType = []*profile.ValueType{
		{Type: "attempts", Unit: "count"},
		{Type: "failures", Unit: "count"},
	}

	for _, option := range options {
		option(p)
	}

	log := logger.Logger()
	if p.filePath == "" {
		log.Warn().Msg("grapheq profiling enabled [not writing to disk]")
	} else {
		log.Info().Str("path", p.filePath).Msg("grapheq profiling enabled")
	}

	return p
}

// Stop finalizes the session and may write the pprof file to disk. See WithPath option.
func (p *Profile) Stop() {
	log := logger.Logger()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		log.Fatal().Msg("grapheq profile stopped multiple times")
	}
	p.stopped = true

	if p.filePath != "" {
		f, err := os.Create(p.filePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create grapheq profile")
		}
		if err := p.pprof.Write(f); err != nil {
			log.Error().Err(err).Msg("writing profile")
		}
		f.Close()
		log.Info().Str("path", p.filePath).Msg("grapheq profiling disabled")
	} else {
		log.Warn().Msg("grapheq profiling disabled [not writing to disk]")
	}
}

// RecordAttempt adds one relation evaluation attempt to the session. failed
// marks attempts abandoned because an input could not be resolved or the
// evaluation signalled a domain error.
func (p *Profile) RecordAttempt(relation string, failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.samples[relation]
	if !ok {
		f := &profile.Function{
			ID:   uint64(len(p.pprof.Function) + 1),
			Name: relation,
		}
		p.pprof.Function = append(p.pprof.Function, f)
		l := &profile.Location{
			ID:   uint64(len(p.pprof.Location) + 1),
			Line: []profile.Line{{Function: f}},
		}
		p.pprof.Location = append(p.pprof.Location, l)
		s = &profile.Sample{
			Location: []*profile.Location{l},
			Value:    []int64{0, 0},
		}
		p.pprof.Sample = append(p.pprof.Sample, s)
		p.samples[relation] = s
	}

	s.Value[0]++
	if failed {
		s.Value[1]++
	}
}

// NbAttempts returns the number of relation evaluation attempts collected by
// the session.
func (p *Profile) NbAttempts() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	var n int64
	for _, s := range p.pprof.Sample {
		n += s.Value[0]
	}
	return int(n)
}

// Top returns a output similar to the pprof top command: relations sorted by
// attempt count, with their failure count.
func (p *Profile) Top() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	type row struct {
		name               string
		attempts, failures int64
	}
	rows := make([]row, 0, len(p.samples))
	for name, s := range p.samples {
		rows = append(rows, row{name, s.Value[0], s.Value[1]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].attempts != rows[j].attempts {
			return rows[i].attempts > rows[j].attempts
		}
		return rows[i].name < rows[j].name
	})

	var sbb strings.Builder
	fmt.Fprintf(&sbb, "%10s %10s  relation\n", "attempts", "failures")
	for _, r := range rows {
		fmt.Fprintf(&sbb, "%10d %10d  %s\n", r.attempts, r.failures, r.name)
	}
	return sbb.String()
}
