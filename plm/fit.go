package plm

import (
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinglass/ising"
)

// Fit runs regularized pseudo-likelihood maximization on the m×n sample
// matrix X (rows are spin configurations, entries ∈ {−1,+1}) and mutates
// the model's W, b and mask in place.
//
// Outer loop, up to MaxIter iterations:
//  1. remember the objective before the step,
//  2. apply one gradient-ascent update to W (masked, symmetrized, zero
//     diagonal) and b,
//  3. every Epochs iterations decimate: prune mask entries where
//     |W_ij| < delta, keep the mask symmetric, and zero the pruned
//     weights so reads reflect the pruning immediately,
//  4. recompute the objective; stop as soon as it is numerically
//     indistinguishable from the pre-step value (plateau rule).
//
// A zero-variance X makes the first update a no-op and the loop converge
// immediately — a legitimate terminal state, not an error. Entries
// outside {−1,+1} are logged as a warning and the computation proceeds;
// callers needing strict correctness must pre-validate.
//
// Errors: ErrNilSamples, ErrDimensionMismatch, ErrBadThreshold,
// ErrBadOptions. Validation happens before any state mutation.
//
// Complexity: O(MaxIter·m·n²) time, O(m·n + n²) reusable scratch space.
func (mdl *Model) Fit(X *mat.Dense, delta float64, opts *FitOptions) (FitResult, error) {
	resolved := DefaultFitOptions()
	if opts != nil {
		resolved = *opts
	}
	if err := resolved.validate(); err != nil {
		return FitResult{}, err
	}
	if X == nil {
		return FitResult{}, ErrNilSamples
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return FitResult{}, ErrBadThreshold
	}
	samples, cols := X.Dims()
	if cols != mdl.n {
		return FitResult{}, ErrDimensionMismatch
	}
	warnNonSpin(X)

	mdl.ensureScratch(samples)

	res := FitResult{Options: resolved}
	pl := mdl.objective(X, &resolved)
	for it := 1; it <= resolved.MaxIter; it++ {
		mdl.ascend(X, &resolved)
		if it%resolved.Epochs == 0 {
			mdl.decimate(delta)
		}

		plNew := mdl.objective(X, &resolved)
		res.Iterations = it
		res.PseudoLikelihood = plNew
		if closeEnough(pl, plNew) {
			res.Converged = true
			log.Debug().Int("iterations", it).Float64("pl", plNew).
				Msg("plm: objective plateaued")

			break
		}
		pl = plNew
	}

	return res, nil
}

// PseudoLikelihood evaluates the objective on X for the current W and b
// without mutating the model. Nil opts select DefaultFitOptions.
//
// Errors: ErrNilSamples, ErrDimensionMismatch, ErrBadOptions.
func (mdl *Model) PseudoLikelihood(X *mat.Dense, opts *FitOptions) (float64, error) {
	resolved := DefaultFitOptions()
	if opts != nil {
		resolved = *opts
	}
	if err := resolved.validate(); err != nil {
		return 0, err
	}
	if X == nil {
		return 0, ErrNilSamples
	}
	samples, cols := X.Dims()
	if cols != mdl.n {
		return 0, ErrDimensionMismatch
	}

	mdl.ensureScratch(samples)

	return mdl.objective(X, &resolved), nil
}

// objective computes
//
//	PL = [β·(tr(X·W·Xᵀ) + Σ X·b) − Σ log cosh(β·(W·Xᵀ + b))]/m − α·Σ|W|
//
// using the identity tr(X·W·Xᵀ) + Σ X·b = Σ Xᵀ⊙F with F = W·Xᵀ + b,
// so the conditional field is evaluated exactly once per call.
func (mdl *Model) objective(X *mat.Dense, o *FitOptions) float64 {
	f := mdl.conditionalField(X)

	samples := mdl.scratch.samples
	var fit, reg float64
	for i := 0; i < mdl.n; i++ {
		row := f.RawRowView(i)
		for s := 0; s < samples; s++ {
			fit += o.Beta*X.At(s, i)*row[s] - logCosh(o.Beta*row[s])
		}
		for j := 0; j < mdl.n; j++ {
			reg += math.Abs(mdl.w.At(i, j))
		}
	}

	return fit/float64(samples) - o.Alpha*reg
}

// ascend applies one gradient-ascent update:
//
//	dev = Xᵀ − tanh(β·(W·Xᵀ + b))
//	dW  = symmetrize((β/m)·dev·X) − α·sign(W)
//	db  = β·mean(dev)
//	W ← (W + lr·dW) ⊙ mask   (symmetric, zero diagonal)
//	b ← b + lr·db
func (mdl *Model) ascend(X *mat.Dense, o *FitOptions) {
	f := mdl.conditionalField(X)
	samples := mdl.scratch.samples
	dev := mdl.scratch.dev
	for i := 0; i < mdl.n; i++ {
		frow := f.RawRowView(i)
		drow := dev.RawRowView(i)
		var sum float64
		for s := 0; s < samples; s++ {
			drow[s] = X.At(s, i) - math.Tanh(o.Beta*frow[s])
			sum += drow[s]
		}
		mdl.scratch.gradB[i] = o.Beta * sum / float64(samples)
	}

	gw := mdl.scratch.gradW
	gw.Mul(dev, X)
	gw.Scale(o.Beta/float64(samples), gw)
	sym := ising.Symmetrize(mdl.scratch.gradSym, gw)

	for i := 0; i < mdl.n; i++ {
		for j := 0; j < mdl.n; j++ {
			if i == j {
				continue
			}
			g := sym.At(i, j) - o.Alpha*ising.Step(mdl.w.At(i, j))
			mdl.w.Set(i, j, mdl.w.At(i, j)+o.LearningRate*g)
		}
		mdl.b.SetVec(i, mdl.b.AtVec(i)+o.LearningRate*mdl.scratch.gradB[i])
	}

	ising.Symmetrize(mdl.w, mdl.w)
	mdl.w.MulElem(mdl.w, mdl.mask)
}

// decimate prunes mask entries whose weight magnitude fell below delta,
// keeps the mask exactly symmetric, and zeroes the pruned weights.
// Pruned couplings never come back: the next update re-applies the mask.
func (mdl *Model) decimate(delta float64) {
	pruned := 0
	for i := 0; i < mdl.n; i++ {
		for j := i + 1; j < mdl.n; j++ {
			if mdl.mask.At(i, j) == 0 {
				continue
			}
			if math.Abs(mdl.w.At(i, j)) < delta {
				mdl.mask.Set(i, j, 0)
				mdl.mask.Set(j, i, 0)
				mdl.w.Set(i, j, 0)
				mdl.w.Set(j, i, 0)
				pruned++
			}
		}
	}
	if pruned > 0 {
		log.Debug().Int("pruned", pruned).Msg("plm: decimated couplings")
	}
}

// conditionalField fills and returns the scratch field F = W·Xᵀ + b (n×m).
func (mdl *Model) conditionalField(X *mat.Dense) *mat.Dense {
	f := mdl.scratch.field
	f.Mul(mdl.w, X.T())
	for i := 0; i < mdl.n; i++ {
		row := f.RawRowView(i)
		h := mdl.b.AtVec(i)
		for s := range row {
			row[s] += h
		}
	}

	return f
}

// warnNonSpin logs a single warning when X contains entries outside
// {−1,+1}. Non-fatal: the estimator still runs, the result is garbage-in
// garbage-out.
func warnNonSpin(X *mat.Dense) {
	rows, cols := X.Dims()
	bad := 0
	for s := 0; s < rows; s++ {
		for i := 0; i < cols; i++ {
			if !isSpin(X.At(s, i)) {
				bad++
			}
		}
	}
	if bad > 0 {
		log.Warn().Int("entries", bad).
			Msg("plm: sample entries outside {-1,+1}; proceeding anyway")
	}
}

// logCosh evaluates log(cosh(z)) without overflowing for large |z|:
// log cosh z = |z| + log1p(e^{−2|z|}) − log 2.
func logCosh(z float64) float64 {
	a := math.Abs(z)

	return a + math.Log1p(math.Exp(-2*a)) - math.Ln2
}
