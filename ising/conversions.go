package ising

import (
	"gonum.org/v1/gonum/mat"
)

// Trans expands a sparse 1-based pair→weight map into a dense symmetric
// n×n matrix with zero diagonal: each entry is written at (i,j) and
// mirrored at (j,i).
//
// The optional size argument fixes n explicitly; when omitted, n is the
// largest index mentioned in the map. Supplying both orientations of one
// pair fails with ErrDuplicatePair so the mirror write is never ambiguous.
//
// Errors: ErrBadSize, ErrSelfCoupling, ErrIndexOutOfRange, ErrDuplicatePair.
//
// Complexity: O(n² + k) time, O(n²) space.
func Trans(m map[[2]int]float64, size ...int) (*mat.Dense, error) {
	n := 0
	if len(size) > 0 {
		n = size[0]
		if n < 1 {
			return nil, ErrBadSize
		}
	} else {
		for pair := range m {
			n = max(n, pair[0], pair[1])
		}
		if n < 1 {
			return nil, ErrBadSize
		}
	}

	dense := mat.NewDense(n, n, nil)
	seen := make(map[[2]int]struct{}, len(m))
	for pair, w := range m {
		i, j := pair[0], pair[1]
		if i == j {
			return nil, ErrSelfCoupling
		}
		if i < 1 || j < 1 || i > n || j > n {
			return nil, ErrIndexOutOfRange
		}
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicatePair
		}
		seen[key] = struct{}{}
		dense.Set(i-1, j-1, w)
		dense.Set(j-1, i-1, w)
	}

	return dense, nil
}

// Decode collapses a square matrix into a sparse 1-based map of its
// nonzero strictly-upper-triangular entries, keyed (i,j) with i<j.
// It is the inverse of Trans for sparse symmetric input:
// Decode(Trans(d, n)) == d.
//
// Errors: ErrNonSquare.
//
// Complexity: O(n²) time, O(k) space for k nonzero upper entries.
func Decode(m mat.Matrix) (map[[2]int]float64, error) {
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	out := make(map[[2]int]float64)
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if w := m.At(i, j); w != 0 {
				out[[2]int{i + 1, j + 1}] = w
			}
		}
	}

	return out, nil
}

// Symmetrize writes (src + srcᵀ)/2 into dst and returns dst.
// When dst is nil a new matrix is allocated; otherwise dst must already
// have src's shape (callers reuse scratch buffers across calls).
//
// Complexity: O(n²) time, O(1) extra space with a caller-owned dst.
func Symmetrize(dst *mat.Dense, src mat.Matrix) *mat.Dense {
	r, c := src.Dims()
	if dst == nil {
		dst = mat.NewDense(r, c, nil)
	}
	for i := 0; i < r; i++ {
		dst.Set(i, i, src.At(i, i))
		for j := i + 1; j < c; j++ {
			v := (src.At(i, j) + src.At(j, i)) / 2
			dst.Set(i, j, v)
			dst.Set(j, i, v)
		}
	}

	return dst
}

// Step is the sign step function: +1 for positive x, −1 for negative x,
// 0 otherwise (exact zero, negative zero and NaN all map to 0 so dirty
// weights never leak spurious structure into inferred adjacency).
func Step(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
