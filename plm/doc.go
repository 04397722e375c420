// Package plm solves the inverse Ising problem: given observed spin
// configurations, estimate the interaction matrix and bias vector that
// produced them by maximizing an L1-regularized pseudo-likelihood with
// periodic decimation of near-zero couplings.
//
// 🚀 What is pseudo-likelihood?
//
//	The full Ising likelihood has an intractable normalizing constant.
//	Pseudo-likelihood replaces it with the product of each spin's
//	conditional distribution given all others — tractable, consistent,
//	and a standard estimator for Markov random fields.
//
// For an m×n sample matrix X (rows ∈ {−1,+1}ⁿ) the objective is
//
//	PL(W,b) = [β·(tr(X·W·Xᵀ) + Σ X·b) − Σ log cosh(β·(W·Xᵀ + b))]/m − α·Σ|W|
//
// maximized by gradient ascent on the deviation dev = Xᵀ − tanh(β·(W·Xᵀ + b)):
//
//	dW = symmetrize((β/m)·dev·X) − α·sign(W)
//	db = β·mean(dev)
//
// ✨ Key features:
//   - decimation: every Epochs iterations, couplings with |W_ij| < delta
//     are pruned from the mask (mask kept exactly symmetric)
//   - plateau stopping: the loop exits as soon as one update leaves the
//     objective numerically unchanged
//   - reusable scratch buffers: repeated Fit calls on one Model allocate
//     only when the sample shape changes
//   - W stays exactly symmetric with an exactly zero diagonal throughout
//
// ⚙️ Usage:
//
//	m, _ := plm.New(4, 7)                  // 4 units, seed 7
//	res, err := m.Fit(X, 0.2, nil)         // default FitOptions
//	adj := m.Infer()                       // ±1/0 sign structure
//	bonds, _ := ising.Decode(adj)          // sparse recovered map
//
// Errors: ErrBadUnits, ErrNilSamples, ErrDimensionMismatch,
// ErrBadThreshold, ErrBadOptions — see types.go.
//
// Complexity per iteration: O(m·n²) time, O(m·n + n²) scratch memory.
package plm
