package solver

import (
	"github.com/rs/zerolog"

	"github.com/grapheq/grapheq/logger"
	"github.com/grapheq/grapheq/profile"
)

// Option defines option for altering the behavior of the solver (Resolve and
// ResolveBatch). See the descriptions of functions returning instances of
// this type for implemented options.
type Option func(*Config) error

// Config is the configuration for the solver with the options applied.
type Config struct {
	Logger  zerolog.Logger   // defaults to grapheq logger
	Profile *profile.Profile // defaults to nil (no profiling)
}

// WithLogger is a solver option that specifies the zerolog.Logger used for
// search diagnostics. By default, uses grapheq/logger. zerolog.Nop() will
// disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// WithProfile is a solver option that records every relation evaluation
// attempt of the session into p. See the profile package.
func WithProfile(p *profile.Profile) Option {
	return func(opt *Config) error {
		opt.Profile = p
		return nil
	}
}

// NewConfig returns a default config with the options applied.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{Logger: logger.Logger()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
