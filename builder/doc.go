// Package builder constructs deterministic Ising instances — bias and
// interaction maps over the dense identifier space 1..n — for tests,
// benchmarks and examples.
//
// Design contract (strict):
//   - Determinism: same parameters/options/seed ⇒ identical instances.
//   - Safety: never panic; return sentinel errors on invalid parameters.
//   - Functional options (Option) resolve into an immutable config; no
//     global state, no time-based randomness.
//
// Constructors:
//   - Chain(n, j)      — open chain, uniform coupling j (ferromagnetic for
//     j > 0, antiferromagnetic for j < 0).
//   - Ring(n, j)       — closed chain.
//   - Grid(rows, cols, j) — nearest-neighbour square lattice.
//   - RandomSparse(n, p, opts...) — each pair coupled independently with
//     probability p; coupling magnitude via WithCoupling, random ± signs
//     via WithSpinGlass, RNG stream via WithSeed.
//
// Every constructor returns a BiasMap holding an explicit zero entry per
// spin, so downstream index mapping always sees all n identifiers even
// when some spin has no couplings.
package builder
