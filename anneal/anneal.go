package anneal

import (
	"cmp"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinglass/ising"
)

// Anneal — single-spin-flip Metropolis simulated annealing.
//
// Description:
//
//	Samples low-energy configurations of the Ising energy
//
//	    E(s) = −b·s − ½·sᵀ·U(W)·s
//
//	where U(W) is the strictly-upper-triangular part of the dense
//	symmetric interaction matrix (each undirected bond counted once).
//
// Algorithm Outline:
//  1. Relabel bias/interactions into the dense 1..n space (ising.Index),
//     densify the interaction map (ising.Trans) and the bias vector
//     (absent nodes ⇒ zero field).
//  2. Initialize the configuration to all +1 and one RNG from opts.Seed.
//  3. For each read r = 1..Reads:
//     for sweep i = 0..Sweeps-1:
//     β  = BetaMin + (BetaMax−BetaMin)·i/(Sweeps−1)
//     k  ~ Uniform{1..n}; propose flipping spin k
//     dE = s_k·(2·b_k + Σ_j W_kj·s_j)
//     accept iff u < exp(−β·dE), u ~ Uniform[0,1) drawn every step
//     append a copy of the configuration and its energy to the Response.
//  4. Sample = the argmin-energy read, mapped back through Order.
//
// Reads continue the chain from the previous read's terminal state unless
// opts.RestartReads is set; see Options.
//
// Errors:
//   - ErrNoReads / ErrBadSchedule — invalid options.
//   - ising sentinels — malformed interaction maps (duplicate pair,
//     self-coupling).
//
// Complexity:
//
//	Time   = O(Reads·Sweeps·n + Reads·n²)
//	Memory = O(n² + Reads·n)
func Anneal[K cmp.Ordered](bias ising.BiasMap[K], interactions ising.InteractionMap[K], opts *Options) (*Response[K], error) {
	resolved := DefaultOptions()
	if opts != nil {
		resolved = *opts
	}
	if err := resolved.validate(); err != nil {
		return nil, err
	}

	rbias, rinter, order, err := ising.Index(bias, interactions)
	if err != nil {
		return nil, err
	}
	n := len(order)

	// Densify. A 0-unit system is degenerate but well-defined: every read
	// records an empty state with zero energy.
	var w *mat.Dense
	if n > 0 {
		if w, err = ising.Trans(rinter, n); err != nil {
			return nil, err
		}
	}
	b := make([]float64, n)
	for i, h := range rbias {
		b[i-1] = h
	}

	resp := &Response[K]{
		Order:    order,
		States:   make([][]int, 0, resolved.Reads),
		Energies: make([]float64, 0, resolved.Reads),
	}

	rng := rngFromSeed(resolved.Seed)
	spins := make([]float64, n)
	resetSpins(spins)

	for read := 0; read < resolved.Reads; read++ {
		if resolved.RestartReads && read > 0 {
			resetSpins(spins)
		}
		runSchedule(w, b, spins, &resolved, rng)

		state := make([]int, n)
		for i, s := range spins {
			state[i] = int(s)
		}
		resp.States = append(resp.States, state)
		resp.Energies = append(resp.Energies, energy(w, b, spins))
	}

	// Consensus: lowest-energy read, in original identifier space.
	best := resp.States[resp.BestRead()]
	resp.Sample = make(map[K]int, n)
	for i, id := range order {
		resp.Sample[id] = best[i]
	}

	return resp, nil
}

// runSchedule advances the chain through one full sweep schedule in place.
func runSchedule(w *mat.Dense, b []float64, spins []float64, o *Options, rng *rand.Rand) {
	n := len(spins)
	if n == 0 {
		return
	}

	span := o.BetaMax - o.BetaMin
	denom := float64(o.Sweeps - 1)
	for i := 0; i < o.Sweeps; i++ {
		beta := o.BetaMin
		if denom > 0 {
			beta += span * float64(i) / denom
		}

		k := rng.Intn(n)
		dE := spins[k] * (2*b[k] + floats.Dot(w.RawRowView(k), spins))

		// One uniform draw per step, also when dE ≤ 0 (exp(−β·dE) ≥ 1
		// then accepts unconditionally but still consumes the draw).
		if rng.Float64() < math.Exp(-beta*dE) {
			spins[k] = -spins[k]
		}
	}
}

// energy evaluates E(s) = −b·s − ½·Σ_{i<j} W_ij·s_i·s_j.
func energy(w *mat.Dense, b, spins []float64) float64 {
	e := -floats.Dot(b, spins)
	for i := range spins {
		row := w.RawRowView(i)
		for j := i + 1; j < len(spins); j++ {
			e -= 0.5 * row[j] * spins[i] * spins[j]
		}
	}

	return e
}

// resetSpins sets every spin to +1, the canonical initial configuration.
func resetSpins(spins []float64) {
	for i := range spins {
		spins[i] = 1
	}
}
