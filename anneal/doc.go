// Package anneal solves the forward Ising problem: given a field bias and
// a pairwise interaction structure, sample low-energy spin configurations
// with single-spin-flip Metropolis Monte Carlo over a linear
// inverse-temperature schedule.
//
// 🚀 What is simulated annealing?
//
//	A Monte Carlo heuristic for combinatorial ground-state search. Early
//	sweeps run hot (low β ⇒ energy-increasing moves accepted often, the
//	chain escapes local minima); late sweeps run cold (high β ⇒ near-greedy
//	descent, the chain freezes into a low-energy state).
//
// ✨ Key features:
//   - linear β schedule from BetaMin to BetaMax across Sweeps steps
//   - warm-started reads: the chain carries over between reads by default,
//     with RestartReads to opt into independent restarts
//   - consensus Sample = the lowest-energy read, mapped back through the
//     caller's original node identifiers
//   - fully deterministic under a fixed Seed (one RNG per Anneal call)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spinglass/anneal"
//
//	bias := ising.BiasMap[int]{1: -1}
//	bonds := ising.InteractionMap[int]{{1, 2}: 1}
//	opts := anneal.DefaultOptions()
//	opts.Reads = 10
//
//	resp, err := anneal.Anneal(bias, bonds, &opts)
//	// resp.Sample is the consensus assignment, resp.Energies one per read.
//
// Performance:
//
//   - Time:   O(Reads · Sweeps · n) for the chain + O(Reads · n²) for
//     per-read energy evaluation
//   - Memory: O(n² + Reads · n)
//
// Errors: ErrNoReads, ErrBadSchedule — see types.go.
package anneal
