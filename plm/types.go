// Package plm: fit options, result context and sentinel error set.
package plm

import (
	"errors"
	"math"
)

// Sentinel errors returned by the estimator.
var (
	// ErrBadUnits indicates a non-positive unit count passed to New.
	ErrBadUnits = errors.New("plm: number of units must be positive")

	// ErrNilSamples indicates Fit received a nil sample matrix.
	ErrNilSamples = errors.New("plm: sample matrix is nil")

	// ErrDimensionMismatch indicates the sample matrix column count does
	// not match the model's unit count.
	ErrDimensionMismatch = errors.New("plm: sample width does not match model units")

	// ErrBadThreshold indicates a negative or non-finite decimation threshold.
	ErrBadThreshold = errors.New("plm: decimation threshold must be finite and non-negative")

	// ErrBadOptions indicates an unusable hyperparameter combination
	// (non-finite or non-positive where positivity is required).
	ErrBadOptions = errors.New("plm: invalid fit options")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAlpha is the L1 decay rate applied to W.
	DefaultAlpha = 0.01

	// DefaultBeta is the inverse temperature of the likelihood model.
	DefaultBeta = 1.0

	// DefaultLearningRate is the gradient-ascent step size.
	DefaultLearningRate = 1.0

	// DefaultEpochs is the number of iterations between decimation passes.
	DefaultEpochs = 20

	// DefaultMaxIter is the outer-iteration budget.
	DefaultMaxIter = 100
)

// convergence tolerances for the plateau stopping rule: two consecutive
// objective values within rtol (plus a small absolute floor near zero)
// are treated as numerically indistinguishable.
const (
	convergenceRTol = 1e-9
	convergenceATol = 1e-12
)

// FitOptions configures one Fit call.
//
// Fields:
//   - Alpha        — L1 decay rate; 0 disables regularization.
//   - Beta         — inverse temperature of the likelihood model.
//   - LearningRate — gradient-ascent step size.
//   - Epochs       — iterations between decimation passes.
//   - MaxIter      — outer-iteration budget.
type FitOptions struct {
	Alpha        float64
	Beta         float64
	LearningRate float64
	Epochs       int
	MaxIter      int
}

// DefaultFitOptions returns the documented defaults.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Alpha:        DefaultAlpha,
		Beta:         DefaultBeta,
		LearningRate: DefaultLearningRate,
		Epochs:       DefaultEpochs,
		MaxIter:      DefaultMaxIter,
	}
}

// validate checks the resolved options against ErrBadOptions.
func (o *FitOptions) validate() error {
	for _, v := range [...]float64{o.Alpha, o.Beta, o.LearningRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadOptions
		}
	}
	if o.Alpha < 0 || o.Beta <= 0 || o.LearningRate <= 0 {
		return ErrBadOptions
	}
	if o.Epochs < 1 || o.MaxIter < 1 {
		return ErrBadOptions
	}

	return nil
}

// FitResult is the converged context returned by Fit.
//
// Iterations counts completed gradient updates; Converged reports whether
// the plateau rule fired before the MaxIter budget ran out.
// PseudoLikelihood is the objective after the final update; Options echoes
// the fully resolved hyperparameters the run actually used.
type FitResult struct {
	Iterations       int
	Converged        bool
	PseudoLikelihood float64
	Options          FitOptions
}
