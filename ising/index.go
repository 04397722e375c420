package ising

import (
	"cmp"
	"slices"
)

// Index relabels the node identifiers appearing in bias and interactions
// into the dense, sorted integer space 1..n.
//
// The identifier set is the union of bias keys and both elements of every
// interaction pair, sorted ascending for a deterministic mapping. The
// returned order slice is the inverse mapping: order[i-1] is the original
// identifier of dense index i.
//
// Contracts:
//   - Pure function: the input maps are never mutated.
//   - Interaction pairs are canonicalized to (low, high) in the output.
//   - Self-pairs fail with ErrSelfCoupling; a pair present in both
//     orientations fails with ErrDuplicatePair.
//
// Complexity: O(t log t) time for t distinct identifiers, O(t + k) space
// for k interactions.
func Index[K cmp.Ordered](bias BiasMap[K], interactions InteractionMap[K]) (BiasMap[int], InteractionMap[int], []K, error) {
	// Collect every identifier mentioned anywhere.
	seen := make(map[K]struct{}, len(bias)+2*len(interactions))
	for id := range bias {
		seen[id] = struct{}{}
	}
	for pair := range interactions {
		if pair[0] == pair[1] {
			return nil, nil, nil, ErrSelfCoupling
		}
		seen[pair[0]] = struct{}{}
		seen[pair[1]] = struct{}{}
	}

	// Sort ascending: the mapping must not depend on map iteration order.
	order := make([]K, 0, len(seen))
	for id := range seen {
		order = append(order, id)
	}
	slices.Sort(order)

	// Build identifier -> 1-based dense index.
	idx := make(map[K]int, len(order))
	for i, id := range order {
		idx[id] = i + 1
	}

	rbias := make(BiasMap[int], len(bias))
	for id, h := range bias {
		rbias[idx[id]] = h
	}

	rinter := make(InteractionMap[int], len(interactions))
	for pair, j := range interactions {
		u, v := idx[pair[0]], idx[pair[1]]
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := rinter[key]; dup {
			return nil, nil, nil, ErrDuplicatePair
		}
		rinter[key] = j
	}

	return rbias, rinter, order, nil
}
