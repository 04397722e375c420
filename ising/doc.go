// Package ising defines the shared data model for pairwise binary-spin
// systems and the conversions between its sparse and dense forms.
//
// 🚀 What lives here?
//
//	• BiasMap / InteractionMap — sparse, user-facing model inputs keyed by
//	  arbitrary ordered node identifiers (ints, strings, ...).
//	• Index — relabels both maps into the dense, sorted 1..n integer space
//	  and reports the identifier order used (the index mapping).
//	• Trans / Decode — sparse pair→value maps ↔ dense symmetric matrices
//	  with zero diagonal, round-trippable for strictly-upper sparse input.
//	• Symmetrize / Step — small numeric helpers shared by the solvers.
//
// Conventions:
//
//   - Indices are 1-based everywhere a sparse map is involved; dense
//     gonum matrices are 0-based as usual. Trans and Decode translate.
//   - An interaction pair is unordered: callers supply exactly one
//     orientation per pair, never both (ErrDuplicatePair otherwise).
//   - Self-couplings are invalid (ErrSelfCoupling): the dense diagonal is
//     zero at all times.
//
// Identifier homogeneity is enforced by the compiler: BiasMap and
// InteractionMap share one type parameter, so a mixed-type model cannot
// be expressed. Sorting the identifiers ascending makes the mapping
// deterministic across runs.
//
// Complexity: Index is O(t log t) for t distinct identifiers; Trans and
// Decode are O(n²) in the matrix side and O(k) in the sparse side.
package ising
