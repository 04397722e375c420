// Package builder: sentinel errors and functional options.
package builder

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the instance constructors.
var (
	// ErrTooFewSpins indicates an instance too small to carry a coupling.
	ErrTooFewSpins = errors.New("builder: at least two spins required")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must lie in [0,1]")

	// ErrZeroCoupling indicates a zero coupling strength, which would
	// build an interaction-free instance by accident.
	ErrZeroCoupling = errors.New("builder: coupling strength must be non-zero")
)

// defaultSeed mirrors the RNG policy of the solver packages: seed==0
// selects this fixed default so instances stay reproducible by default.
const defaultSeed int64 = 1

// defaultCoupling is the magnitude used by RandomSparse when
// WithCoupling is not supplied.
const defaultCoupling = 1.0

// config is the resolved option state consumed by stochastic constructors.
type config struct {
	seed      int64
	coupling  float64
	spinGlass bool
}

// Option mutates the resolved config. Options validate eagerly where a
// nonsensical value can be detected without context.
type Option func(*config)

// WithSeed fixes the RNG stream of a stochastic constructor.
// Seed 0 keeps the package default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithCoupling sets the coupling magnitude used for generated bonds.
func WithCoupling(j float64) Option {
	return func(c *config) { c.coupling = j }
}

// WithSpinGlass randomizes the sign of every generated bond, producing a
// frustrated spin-glass instance instead of a uniform ferromagnet.
func WithSpinGlass() Option {
	return func(c *config) { c.spinGlass = true }
}

// resolve folds opts into the default config and builds its RNG.
func resolve(opts []Option) (config, *rand.Rand) {
	c := config{seed: defaultSeed, coupling: defaultCoupling}
	for _, opt := range opts {
		opt(&c)
	}
	if c.seed == 0 {
		c.seed = defaultSeed
	}

	return c, rand.New(rand.NewSource(c.seed))
}
