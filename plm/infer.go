package plm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinglass/ising"
)

// Infer returns the sign structure of the estimated weights as an
// integer-valued adjacency matrix: +1 where the coupling is positive,
// −1 where negative, 0 where the weight is exactly zero or pruned.
//
// Infer is a pure read: calling it repeatedly without an intervening Fit
// yields identical results. Feed the output to ising.Decode to obtain
// the sparse recovered interaction map.
//
// Complexity: O(n²).
func (mdl *Model) Infer() *mat.Dense {
	out := mdl.Coef()
	out.Apply(func(_, _ int, v float64) float64 { return ising.Step(v) }, out)

	return out
}
