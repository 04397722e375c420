package plm

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// initScale is the standard deviation of the random W/b initialization.
// Small enough that the first gradient steps dominate the starting point.
const initScale = 0.01

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0,
// matching the RNG policy of the anneal package.
const defaultRNGSeed int64 = 1

// Model is a pairwise binary-spin model under estimation: a symmetric
// zero-diagonal weight matrix W, a bias vector b, and a symmetric 0/1
// decimation mask (1 = active coupling, 0 = pruned).
//
// W and the mask are co-owned by the Model and mutated only through Fit;
// accessors return defensive copies. A Model is long-lived: repeated Fit
// calls keep accumulating updates and pruning into the same state, and
// the private scratch buffers are reused across calls (reallocated only
// when the sample shape changes).
type Model struct {
	n    int
	w    *mat.Dense
	b    *mat.VecDense
	mask *mat.Dense

	scratch fitScratch
}

// fitScratch holds the per-Fit working set: the conditional field and
// deviation matrices (n×m) and the weight gradient (n×n). Owned by the
// Model so repeated fits on same-shaped data allocate nothing.
type fitScratch struct {
	samples int // m the buffers are sized for; 0 = unallocated
	field   *mat.Dense
	dev     *mat.Dense
	gradW   *mat.Dense
	gradSym *mat.Dense
	gradB   []float64
}

// New returns a freshly initialized n-unit Model: small random symmetric
// W with zero diagonal, small random b, and a full (all-active) mask.
// Seed policy: seed==0 selects the fixed package default.
//
// Errors: ErrBadUnits for n < 1.
func New(n int, seed int64) (*Model, error) {
	if n < 1 {
		return nil, ErrBadUnits
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}
	rng := rand.New(rand.NewSource(seed))

	w := mat.NewDense(n, n, nil)
	mask := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := initScale * rng.NormFloat64()
			w.Set(i, j, v)
			w.Set(j, i, v)
			mask.Set(i, j, 1)
			mask.Set(j, i, 1)
		}
	}

	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, initScale*rng.NormFloat64())
	}

	return &Model{n: n, w: w, b: b, mask: mask}, nil
}

// Units returns the model's unit count n.
func (m *Model) Units() int { return m.n }

// Bias returns a copy of the bias vector.
func (m *Model) Bias() []float64 {
	out := make([]float64, m.n)
	copy(out, m.b.RawVector().Data)

	return out
}

// Mask returns a defensive copy of the decimation mask.
func (m *Model) Mask() *mat.Dense {
	out := mat.NewDense(m.n, m.n, nil)
	out.Copy(m.mask)

	return out
}

// Coef returns a defensive copy of the weight matrix with negative zero
// normalized to positive zero, so downstream sign tests and map
// comparisons never observe −0.
func (m *Model) Coef() *mat.Dense {
	out := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			v := m.w.At(i, j)
			if v == 0 {
				v = 0 // folds −0 into +0
			}
			out.Set(i, j, v)
		}
	}

	return out
}

// ensureScratch sizes the scratch buffers for m samples, reusing the
// previous allocation when the shape is unchanged.
func (m *Model) ensureScratch(samples int) {
	if m.scratch.samples == samples {
		return
	}
	m.scratch = fitScratch{
		samples: samples,
		field:   mat.NewDense(m.n, samples, nil),
		dev:     mat.NewDense(m.n, samples, nil),
		gradW:   mat.NewDense(m.n, m.n, nil),
		gradSym: mat.NewDense(m.n, m.n, nil),
		gradB:   make([]float64, m.n),
	}
}

// isSpin reports whether v is a valid spin value.
func isSpin(v float64) bool { return v == 1 || v == -1 }

// closeEnough implements the plateau rule: |a−b| within convergenceRTol
// of the larger magnitude, with an absolute floor near zero.
func closeEnough(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))

	return diff <= math.Max(convergenceRTol*scale, convergenceATol)
}
