// SPDX-License-Identifier: MIT

package edm

import "github.com/EDM-Developers/EDM/core"

// Prediction is the output record of one Predict invocation.
type Prediction struct {
	NumThetas       int
	NumPredictions  int
	NumCoeffCols    int
	Ystar           [][]float64   // [theta][q], MISSING where undefined
	Coeffs          [][][]float64 // [theta][q][coeffcol], nil unless SaveMode
	Rho             []float64     // per theta, Pearson correlation vs held-out y
	Mae             []float64     // per theta, mean absolute error vs held-out y
	Rc              core.ReturnCode
}
