package builder

import (
	"math"

	"github.com/katalvlaran/spinglass/ising"
)

// Chain builds an open n-spin chain with uniform coupling j between
// neighbours: {(1,2): j, (2,3): j, ..., (n-1,n): j}.
//
// Errors: ErrTooFewSpins (n < 2), ErrZeroCoupling.
//
// Complexity: O(n).
func Chain(n int, j float64) (ising.BiasMap[int], ising.InteractionMap[int], error) {
	if n < 2 {
		return nil, nil, ErrTooFewSpins
	}
	if j == 0 {
		return nil, nil, ErrZeroCoupling
	}

	inter := make(ising.InteractionMap[int], n-1)
	for i := 1; i < n; i++ {
		inter[[2]int{i, i + 1}] = j
	}

	return zeroBias(n), inter, nil
}

// Ring builds a closed n-spin chain: Chain(n, j) plus the bond (1,n).
// An odd ring with j < 0 is the minimal frustrated instance.
//
// Errors: ErrTooFewSpins (n < 3), ErrZeroCoupling.
//
// Complexity: O(n).
func Ring(n int, j float64) (ising.BiasMap[int], ising.InteractionMap[int], error) {
	if n < 3 {
		return nil, nil, ErrTooFewSpins
	}
	bias, inter, err := Chain(n, j)
	if err != nil {
		return nil, nil, err
	}
	inter[[2]int{1, n}] = j

	return bias, inter, nil
}

// Grid builds a rows×cols nearest-neighbour square lattice with uniform
// coupling j. Spins are numbered row-major, 1-based.
//
// Errors: ErrTooFewSpins (fewer than two spins total), ErrZeroCoupling.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, j float64) (ising.BiasMap[int], ising.InteractionMap[int], error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, nil, ErrTooFewSpins
	}
	if j == 0 {
		return nil, nil, ErrZeroCoupling
	}

	n := rows * cols
	inter := make(ising.InteractionMap[int], 2*n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c + 1
			if c+1 < cols {
				inter[[2]int{id, id + 1}] = j
			}
			if r+1 < rows {
				inter[[2]int{id, id + cols}] = j
			}
		}
	}

	return zeroBias(n), inter, nil
}

// RandomSparse couples each unordered pair (i,j), i<j, independently with
// probability p. Bond strength is WithCoupling's magnitude (default 1);
// WithSpinGlass flips each bond to ± with equal probability. Pair order
// of RNG consumption is fixed (i ascending, then j), so equal seeds give
// equal instances.
//
// Errors: ErrTooFewSpins (n < 2), ErrInvalidProbability, ErrZeroCoupling.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, opts ...Option) (ising.BiasMap[int], ising.InteractionMap[int], error) {
	if n < 2 {
		return nil, nil, ErrTooFewSpins
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, nil, ErrInvalidProbability
	}
	cfg, rng := resolve(opts)
	if cfg.coupling == 0 {
		return nil, nil, ErrZeroCoupling
	}

	inter := make(ising.InteractionMap[int])
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() >= p {
				continue
			}
			w := cfg.coupling
			if cfg.spinGlass && rng.Intn(2) == 1 {
				w = -w
			}
			inter[[2]int{i, j}] = w
		}
	}

	return zeroBias(n), inter, nil
}

// zeroBias returns a bias map carrying an explicit zero field for every
// spin 1..n, so index mapping sees the full identifier set.
func zeroBias(n int) ising.BiasMap[int] {
	bias := make(ising.BiasMap[int], n)
	for i := 1; i <= n; i++ {
		bias[i] = 0
	}

	return bias
}
