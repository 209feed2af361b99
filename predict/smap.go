// SPDX-License-Identifier: MIT

package predict

import (
	"math"

	"github.com/EDM-Developers/EDM/manifold"
	"gonum.org/v1/gonum/mat"
)

// Smap computes the S-map prediction and coefficient vector for one query
// row from its selected neighborhood: mean-normalized weights, a
// weighted-least-squares design solved via thin SVD, and the coefficient
// vector c of length E_actual+1 (c[0] is the intercept).
//
// Rows with a missing y or any missing library cell are dropped before the
// solve. minRows is the caller's E_actual+1 threshold; when the filtered
// row count falls below it and forceCompute is false, Smap returns
// ErrNoNeighbors. When forceCompute is true it proceeds regardless, letting
// the SVD's own near-zero singular values pass through the pseudo-inverse
// rather than truncating them.
func Smap(lib *manifold.Manifold, queryRow []float64, indices []int, dists []float64, theta, missing float64, minRows int, forceCompute bool) (float64, []float64, error) {
	if len(indices) == 0 {
		return missing, nil, ErrNoNeighbors
	}

	weights := make([]float64, len(dists))
	sum := 0.0
	for j, d := range dists {
		weights[j] = math.Sqrt(d)
		sum += weights[j]
	}
	mean := sum / float64(len(weights))
	if mean == 0 {
		mean = 1
	}
	for j := range weights {
		weights[j] = math.Exp(-theta * weights[j] / mean)
	}

	eActual := lib.EActual()
	cols := eActual + 1

	var rows [][]float64
	var targets []float64
	for j, idx := range indices {
		y := lib.Y(idx)
		if y == missing || lib.AnyMissing(idx) {
			continue
		}
		w := weights[j]
		row := make([]float64, cols)
		row[0] = w
		libRow := lib.Row(idx)
		for c := 0; c < eActual; c++ {
			row[c+1] = w * libRow[c]
		}
		rows = append(rows, row)
		targets = append(targets, w*y)
	}

	if len(rows) < minRows && !forceCompute {
		return missing, nil, ErrNoNeighbors
	}
	if len(rows) == 0 {
		return missing, nil, ErrNoNeighbors
	}

	m := len(rows)
	aData := make([]float64, 0, m*cols)
	for _, r := range rows {
		aData = append(aData, r...)
	}
	A := mat.NewDense(m, cols, aData)
	b := mat.NewVecDense(m, targets)

	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDThin) {
		return missing, nil, ErrSVDFailed
	}

	sv := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	k := len(sv)
	z := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		if sv[i] == 0 {
			continue
		}
		utb := 0.0
		for r := 0; r < m; r++ {
			utb += u.At(r, i) * b.AtVec(r)
		}
		z.SetVec(i, utb/sv[i])
	}

	c := mat.NewVecDense(cols, nil)
	c.MulVec(&v, z)

	coeffs := make([]float64, cols)
	for i := 0; i < cols; i++ {
		coeffs[i] = c.AtVec(i)
	}

	yhat := coeffs[0]
	for j := 1; j < cols; j++ {
		qv := queryRow[j-1]
		if qv == missing {
			continue
		}
		yhat += coeffs[j] * qv
	}

	return yhat, coeffs, nil
}
