// SPDX-License-Identifier: MIT

package neighbor

import (
	"sort"

	"github.com/EDM-Developers/EDM/core"
)

// smapMinFallback is the S-map minimum neighbor count used when E_actual+1
// would be smaller than the "at least 2" floor S-map always requires.
const smapMinFallback = 2

// Select returns the k nearest candidates from the parallel indices/dists
// vectors, sorted by ascending distance with ties broken by lower original
// index. k<=0 or k>=len(indices) returns all candidates, still sorted.
// Complexity: O(n log n).
func Select(indices []int, dists []float64, k int) ([]int, []float64) {
	n := len(indices)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if dists[ia] != dists[ib] {
			return dists[ia] < dists[ib]
		}

		return indices[ia] < indices[ib]
	})

	count := n
	if k > 0 && k < n {
		count = k
	}

	selIndices := make([]int, count)
	selDists := make([]float64, count)
	for i := 0; i < count; i++ {
		selIndices[i] = indices[order[i]]
		selDists[i] = dists[order[i]]
	}

	return selIndices, selDists
}

// MinRequired returns the mode-specific minimum surviving-neighbor count:
// Simplex needs at least 1; S-map needs at least 2 and, ideally, enough
// rows to form a well-posed regression (E_actual+1).
func MinRequired(algo core.Algorithm, eActual int) int {
	if algo != core.Smap {
		return 1
	}
	need := eActual + 1
	if need < smapMinFallback {
		need = smapMinFallback
	}

	return need
}

// CheckSufficient reports INSUFFICIENT_UNIQUE when fewer than MinRequired
// neighbors survived selection, else SUCCESS.
func CheckSufficient(n int, algo core.Algorithm, eActual int) core.ReturnCode {
	if n < MinRequired(algo, eActual) {
		return core.INSUFFICIENT_UNIQUE
	}

	return core.SUCCESS
}
