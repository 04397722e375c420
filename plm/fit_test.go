package plm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinglass/plm"
)

// randomSpins builds an m×n sample matrix of iid ±1 entries from a fixed
// seed, the standard fixture for estimator tests.
func randomSpins(m, n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(m, n, nil)
	for s := 0; s < m; s++ {
		for i := 0; i < n; i++ {
			x.Set(s, i, float64(2*rng.Intn(2)-1))
		}
	}

	return x
}

// TestNew_BadUnits verifies the unit-count guard.
func TestNew_BadUnits(t *testing.T) {
	_, err := plm.New(0, 1)
	assert.ErrorIs(t, err, plm.ErrBadUnits)

	_, err = plm.New(-3, 1)
	assert.ErrorIs(t, err, plm.ErrBadUnits)
}

// TestNew_InitialInvariants verifies a fresh model: W symmetric with zero
// diagonal, full off-diagonal mask, and seed-reproducible initialization.
func TestNew_InitialInvariants(t *testing.T) {
	m, err := plm.New(5, 11)
	require.NoError(t, err)

	w := m.Coef()
	mask := m.Mask()
	for i := 0; i < 5; i++ {
		assert.Zero(t, w.At(i, i), "W diagonal")
		assert.Zero(t, mask.At(i, i), "mask diagonal")
		for j := 0; j < 5; j++ {
			assert.Equal(t, w.At(i, j), w.At(j, i), "W symmetry at (%d,%d)", i, j)
			if i != j {
				assert.Equal(t, 1.0, mask.At(i, j), "mask full off-diagonal")
			}
		}
	}

	again, err := plm.New(5, 11)
	require.NoError(t, err)
	assert.True(t, mat.Equal(w, again.Coef()), "equal seeds must give equal models")
}

// TestFit_ValidationSentinels walks every structural error; validation
// must fire before any state mutation.
func TestFit_ValidationSentinels(t *testing.T) {
	m, err := plm.New(3, 1)
	require.NoError(t, err)
	before := m.Coef()

	_, err = m.Fit(nil, 0.1, nil)
	assert.ErrorIs(t, err, plm.ErrNilSamples)

	_, err = m.Fit(randomSpins(5, 4, 1), 0.1, nil)
	assert.ErrorIs(t, err, plm.ErrDimensionMismatch)

	_, err = m.Fit(randomSpins(5, 3, 1), -0.1, nil)
	assert.ErrorIs(t, err, plm.ErrBadThreshold)

	bad := plm.DefaultFitOptions()
	bad.Beta = 0
	_, err = m.Fit(randomSpins(5, 3, 1), 0.1, &bad)
	assert.ErrorIs(t, err, plm.ErrBadOptions)

	bad = plm.DefaultFitOptions()
	bad.Epochs = 0
	_, err = m.Fit(randomSpins(5, 3, 1), 0.1, &bad)
	assert.ErrorIs(t, err, plm.ErrBadOptions)

	assert.True(t, mat.Equal(before, m.Coef()), "failed Fit must not mutate the model")
}

// TestFit_InvariantsAfterFit verifies the hard invariants the update rule
// must preserve: W exactly symmetric, diagonal exactly zero, mask exactly
// symmetric.
func TestFit_InvariantsAfterFit(t *testing.T) {
	m, err := plm.New(6, 3)
	require.NoError(t, err)

	opts := plm.DefaultFitOptions()
	opts.Epochs = 5
	_, err = m.Fit(randomSpins(80, 6, 2), 0.05, &opts)
	require.NoError(t, err)

	w, mask := m.Coef(), m.Mask()
	for i := 0; i < 6; i++ {
		assert.Zero(t, w.At(i, i), "W diagonal at %d", i)
		for j := 0; j < 6; j++ {
			assert.Equal(t, w.At(i, j), w.At(j, i), "W symmetry at (%d,%d)", i, j)
			assert.Equal(t, mask.At(i, j), mask.At(j, i), "mask symmetry at (%d,%d)", i, j)
		}
	}
}

// TestFit_ConvergedContext verifies the returned context: the resolved
// options are echoed and the iteration count respects the budget.
func TestFit_ConvergedContext(t *testing.T) {
	m, err := plm.New(4, 1)
	require.NoError(t, err)

	opts := plm.DefaultFitOptions()
	opts.MaxIter = 30
	res, err := m.Fit(randomSpins(50, 4, 4), 0.05, &opts)
	require.NoError(t, err)

	assert.Equal(t, opts, res.Options)
	assert.GreaterOrEqual(t, res.Iterations, 1)
	assert.LessOrEqual(t, res.Iterations, 30)
}

// TestFit_NilOptionsUseDefaults verifies nil opts resolve to the
// documented defaults in the returned context.
func TestFit_NilOptionsUseDefaults(t *testing.T) {
	m, err := plm.New(4, 1)
	require.NoError(t, err)

	res, err := m.Fit(randomSpins(20, 4, 4), 0.05, nil)
	require.NoError(t, err)

	assert.Equal(t, plm.DefaultFitOptions(), res.Options)
}

// TestFit_ZeroVarianceSamples verifies a degenerate constant sample
// matrix is a legitimate input: the fit runs to a terminal state without
// error and the invariants hold.
func TestFit_ZeroVarianceSamples(t *testing.T) {
	m, err := plm.New(4, 2)
	require.NoError(t, err)

	x := mat.NewDense(30, 4, nil)
	x.Apply(func(_, _ int, _ float64) float64 { return 1 }, x)

	_, err = m.Fit(x, 0.1, nil)
	require.NoError(t, err)

	w := m.Coef()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.False(t, math.IsNaN(w.At(i, j)), "W must stay defined")
			assert.Equal(t, w.At(i, j), w.At(j, i))
		}
	}
}

// TestInfer_Idempotent verifies Infer without an intervening Fit is a
// pure read.
func TestInfer_Idempotent(t *testing.T) {
	m, err := plm.New(5, 8)
	require.NoError(t, err)

	_, err = m.Fit(randomSpins(60, 5, 6), 0.02, nil)
	require.NoError(t, err)

	first := m.Infer()
	second := m.Infer()
	assert.True(t, mat.Equal(first, second))
}

// TestCoef_DefensiveCopy verifies mutating the returned matrix cannot
// reach the model.
func TestCoef_DefensiveCopy(t *testing.T) {
	m, err := plm.New(3, 4)
	require.NoError(t, err)

	stolen := m.Coef()
	stolen.Set(0, 1, 999)

	assert.NotEqual(t, 999.0, m.Coef().At(0, 1))
}

// TestPseudoLikelihood_ReadOnly verifies the objective evaluation leaves
// the model untouched and is repeatable.
func TestPseudoLikelihood_ReadOnly(t *testing.T) {
	m, err := plm.New(4, 9)
	require.NoError(t, err)
	x := randomSpins(40, 4, 3)

	before := m.Coef()
	pl1, err := m.PseudoLikelihood(x, nil)
	require.NoError(t, err)
	pl2, err := m.PseudoLikelihood(x, nil)
	require.NoError(t, err)

	assert.Equal(t, pl1, pl2)
	assert.True(t, mat.Equal(before, m.Coef()))
}

// TestFit_DecimationIsMonotonic verifies pruned couplings never come
// back across repeated fits on the same model.
func TestFit_DecimationIsMonotonic(t *testing.T) {
	m, err := plm.New(5, 6)
	require.NoError(t, err)
	x := randomSpins(60, 5, 10)

	opts := plm.DefaultFitOptions()
	opts.Epochs = 2
	opts.MaxIter = 10
	_, err = m.Fit(x, 0.5, &opts)
	require.NoError(t, err)
	maskAfterFirst := m.Mask()

	_, err = m.Fit(x, 0.5, &opts)
	require.NoError(t, err)
	maskAfterSecond := m.Mask()

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if maskAfterFirst.At(i, j) == 0 {
				assert.Zero(t, maskAfterSecond.At(i, j), "pruned (%d,%d) must stay pruned", i, j)
			}
		}
	}
}
