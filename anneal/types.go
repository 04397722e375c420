// Package anneal: options, result container and sentinel error set.
package anneal

import (
	"cmp"
	"errors"
	"math"
)

// Sentinel errors returned by Anneal.
var (
	// ErrNoReads indicates Reads < 1: a run with zero reads has no
	// argmin-energy consensus and must fail rather than return garbage.
	ErrNoReads = errors.New("anneal: at least one read required")

	// ErrBadSchedule indicates an unusable temperature schedule:
	// non-finite β bounds, BetaMin > BetaMax, or Sweeps < 1.
	ErrBadSchedule = errors.New("anneal: invalid temperature schedule")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultBetaMin is the initial inverse temperature of the schedule.
	DefaultBetaMin = 5.0

	// DefaultBetaMax is the final inverse temperature of the schedule.
	DefaultBetaMax = 15.0

	// DefaultSweeps is the number of linearly spaced β steps per read.
	DefaultSweeps = 1000

	// DefaultReads is the number of recorded reads per run.
	DefaultReads = 1
)

// Options configures one annealing run.
//
// Fields:
//   - BetaMin / BetaMax — inverse-temperature bounds of the linear schedule.
//   - Sweeps            — Metropolis steps per read; β is interpolated from
//     BetaMin to BetaMax across the sweep index.
//   - Reads             — number of recorded reads. The chain is carried
//     over between reads unless RestartReads is set.
//   - RestartReads      — reset the configuration to all +1 at the start of
//     every read, turning correlated checkpoints into independent restarts.
//   - Seed              — RNG seed; 0 selects the fixed package default so
//     results stay reproducible without caller ceremony.
type Options struct {
	BetaMin      float64
	BetaMax      float64
	Sweeps       int
	Reads        int
	RestartReads bool
	Seed         int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		BetaMin: DefaultBetaMin,
		BetaMax: DefaultBetaMax,
		Sweeps:  DefaultSweeps,
		Reads:   DefaultReads,
	}
}

// validate checks the resolved options against the sentinels above.
func (o *Options) validate() error {
	if o.Reads < 1 {
		return ErrNoReads
	}
	if o.Sweeps < 1 {
		return ErrBadSchedule
	}
	if math.IsNaN(o.BetaMin) || math.IsInf(o.BetaMin, 0) ||
		math.IsNaN(o.BetaMax) || math.IsInf(o.BetaMax, 0) ||
		o.BetaMin > o.BetaMax {
		return ErrBadSchedule
	}

	return nil
}

// Response holds the outcome of one annealing run.
//
// Order is the index mapping produced while densifying the inputs:
// Order[i] is the original identifier of dense index i+1. States and
// Energies are parallel: States[r] is the terminal configuration of read
// r (entries ∈ {−1,+1}) and Energies[r] its energy. Sample maps every
// original identifier to its spin in the lowest-energy read.
type Response[K cmp.Ordered] struct {
	Order    []K
	States   [][]int
	Energies []float64
	Sample   map[K]int
}

// BestRead returns the index of the minimum-energy read.
// Ties resolve to the earliest read.
func (r *Response[K]) BestRead() int {
	best := 0
	for i := 1; i < len(r.Energies); i++ {
		if r.Energies[i] < r.Energies[best] {
			best = i
		}
	}

	return best
}

// MinEnergy returns the energy of the best read.
func (r *Response[K]) MinEnergy() float64 {
	return r.Energies[r.BestRead()]
}
