// SPDX-License-Identifier: MIT

package edm

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// rhoAndMae computes the Pearson correlation and mean absolute error
// between predicted and actual, excluding any row where either side is
// missing. Returns (missing, missing) when fewer than two pairs survive.
func rhoAndMae(predicted, actual []float64, missing float64) (float64, float64) {
	var p, a []float64
	for i := range predicted {
		if predicted[i] == missing || actual[i] == missing {
			continue
		}
		p = append(p, predicted[i])
		a = append(a, actual[i])
	}

	if len(p) < 2 {
		return missing, missing
	}

	rho := stat.Correlation(p, a, nil)

	maeSum := 0.0
	for i := range p {
		maeSum += math.Abs(p[i] - a[i])
	}
	mae := maeSum / float64(len(p))

	return rho, mae
}
