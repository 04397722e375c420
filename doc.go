// Package spinglass is your in-memory toolkit for pairwise binary-spin
// ("Ising") models — sampling low-energy configurations via simulated
// annealing and recovering interaction structure from observed samples
// via regularized pseudo-likelihood with decimation.
//
// 🚀 What is spinglass?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: bias & interaction maps over arbitrary ordered node IDs
//		• Index mapping: relabel sparse maps into a dense 1..n integer space
//		• Forward problem: single-spin-flip Metropolis annealing over a linear β schedule
//		• Inverse problem: L1-regularized pseudo-likelihood fitting with decimation
//		• Builders: chains, rings, grids and random sparse couplings for fixtures
//
// ✨ Why choose spinglass?
//
//   - Deterministic by construction – explicit seeds, no time-based randomness
//   - Strict sentinels – every failure mode is an errors.Is-matchable error
//   - gonum under the hood – dense algebra on battle-tested matrices
//   - Minimal API – two solvers, one conversion layer, clear naming
//
// Everything is organized under four subpackages:
//
//	ising/   — bias/interaction maps, index mapping, sparse↔dense conversions
//	anneal/  — Metropolis simulated annealing (forward problem)
//	plm/     — pseudo-likelihood maximization with decimation (inverse problem)
//	builder/ — deterministic Ising instance constructors for tests & examples
//
// Quick ASCII example:
//
//	    +1───(−J)───−1
//	     │           │
//	   (−J)        (−J)
//	     │           │
//	    −1───(−J)───+1
//
//	an antiferromagnetic square: the ground state alternates spins.
//
// Dive into examples/ for runnable walkthroughs of both directions:
// ground-state search (forward) and structure recovery (inverse).
//
//	go get github.com/katalvlaran/spinglass
package spinglass
