// Package ising: core types and sentinel error set.
// All conversions MUST return these sentinels and tests MUST check them
// via errors.Is. No function in this package panics on user input.
package ising

import (
	"cmp"
	"errors"
)

// BiasMap assigns an external magnetic-field value to a node identifier.
// Absent nodes default to zero field when densified.
type BiasMap[K cmp.Ordered] map[K]float64

// InteractionMap assigns a coupling weight to an unordered pair of node
// identifiers. At most one orientation per pair may be present; supplying
// both {a,b} and {b,a} is rejected by Index with ErrDuplicatePair.
type InteractionMap[K cmp.Ordered] map[[2]K]float64

// Sentinel errors returned by the ising conversion layer.
var (
	// ErrDuplicatePair indicates that both orientations of one unordered
	// interaction pair were supplied.
	ErrDuplicatePair = errors.New("ising: both orientations of an interaction pair supplied")

	// ErrSelfCoupling indicates an interaction pair of a node with itself;
	// the dense interaction matrix keeps a zero diagonal at all times.
	ErrSelfCoupling = errors.New("ising: self-coupling interaction not allowed")

	// ErrIndexOutOfRange indicates a sparse pair index outside 1..n.
	ErrIndexOutOfRange = errors.New("ising: pair index outside 1..n")

	// ErrBadSize indicates a non-positive requested matrix size.
	ErrBadSize = errors.New("ising: size must be positive")

	// ErrNonSquare indicates Decode received a non-square matrix.
	ErrNonSquare = errors.New("ising: matrix is not square")
)
