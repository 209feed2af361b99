// SPDX-License-Identifier: MIT

package predict

import (
	"math"

	"github.com/EDM-Developers/EDM/manifold"
)

// Simplex computes one prediction per theta from the selected neighborhood:
// exponential weights scaled by the nearest distance, weighted mean of
// neighbor targets, renormalized over non-missing y among the selected
// neighbors.
// Complexity: O(len(thetas) * len(indices)).
func Simplex(lib *manifold.Manifold, indices []int, dists []float64, thetas []float64, missing float64) []float64 {
	out := make([]float64, len(thetas))

	if len(indices) == 0 {
		for i := range out {
			out[i] = missing
		}

		return out
	}

	dBase := dists[0]

	for t, theta := range thetas {
		if dBase == 0 {
			out[t] = missing
			continue
		}

		weightSum := 0.0
		weightedY := 0.0
		anySurvived := false

		for j, idx := range indices {
			y := lib.Y(idx)
			if y == missing {
				continue
			}
			w := math.Exp(-theta * math.Sqrt(dists[j]/dBase))
			weightSum += w
			weightedY += w * y
			anySurvived = true
		}

		if !anySurvived || weightSum == 0 {
			out[t] = missing
			continue
		}

		out[t] = weightedY / weightSum
	}

	return out
}
