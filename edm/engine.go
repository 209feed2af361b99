// SPDX-License-Identifier: MIT

package edm

import (
	"errors"

	"github.com/EDM-Developers/EDM/core"
	"github.com/EDM-Developers/EDM/distance"
	"github.com/EDM-Developers/EDM/manifold"
	"github.com/EDM-Developers/EDM/neighbor"
	"github.com/EDM-Developers/EDM/pool"
	"github.com/EDM-Developers/EDM/predict"
)

// Predict is the engine's single entry point: it materializes the library
// and query manifolds from gen under trainingMask/predictionMask, runs one
// prediction task per query row across the worker pool, and reduces the
// results into a Prediction plus an aggregate return code.
func Predict(opts core.Options, gen *manifold.Generator, trainingMask, predictionMask []bool, io core.IO, cancel core.CancelFunc) (Prediction, core.ReturnCode) {
	if len(trainingMask) != gen.N() || len(predictionMask) != gen.N() {
		return Prediction{Rc: core.UNKNOWN_ERROR}, core.UNKNOWN_ERROR
	}

	eActual := gen.EActual(opts.E)
	if err := opts.Validate(eActual); err != nil {
		rc := mapValidationError(err)

		return Prediction{Rc: rc}, rc
	}

	lib, err := gen.CreateManifold(opts.E, trainingMask, false, false)
	if err != nil {
		return Prediction{Rc: core.UNKNOWN_ERROR}, core.UNKNOWN_ERROR
	}
	query, err := gen.CreateManifold(opts.E, predictionMask, false, false)
	if err != nil {
		return Prediction{Rc: core.UNKNOWN_ERROR}, core.UNKNOWN_ERROR
	}

	numThetas := len(opts.Thetas)
	numPredictions := query.Nobs()
	numCoeffCols := 0
	if opts.SaveMode {
		numCoeffCols = eActual + 1
		if opts.Varssv > 0 && opts.Varssv < numCoeffCols {
			numCoeffCols = opts.Varssv
		}
	}

	ystar := make([][]float64, numThetas)
	for t := range ystar {
		ystar[t] = make([]float64, numPredictions)
		for q := range ystar[t] {
			ystar[t][q] = opts.MissingValue
		}
	}

	var coeffs [][][]float64
	if opts.SaveMode {
		coeffs = make([][][]float64, numThetas)
		for t := range coeffs {
			coeffs[t] = make([][]float64, numPredictions)
			for q := range coeffs[t] {
				coeffs[t][q] = make([]float64, numCoeffCols)
			}
		}
	}

	candidates := make([]int, lib.Nobs())
	for i := range candidates {
		candidates[i] = i
	}

	task := func(q int) core.ReturnCode {
		return predictRow(&lib, &query, q, candidates, opts, eActual, numCoeffCols, ystar, coeffs, cancel)
	}

	_, aggregate := pool.Run(numPredictions, opts.NThreads, io, cancel, task)

	actual := make([]float64, numPredictions)
	for q := 0; q < numPredictions; q++ {
		actual[q] = query.Y(q)
	}

	rho := make([]float64, numThetas)
	mae := make([]float64, numThetas)
	for t := 0; t < numThetas; t++ {
		rho[t], mae[t] = rhoAndMae(ystar[t], actual, opts.MissingValue)
	}

	return Prediction{
		NumThetas:      numThetas,
		NumPredictions: numPredictions,
		NumCoeffCols:   numCoeffCols,
		Ystar:          ystar,
		Coeffs:         coeffs,
		Rho:            rho,
		Mae:            mae,
		Rc:             aggregate,
	}, aggregate
}

func predictRow(lib, query *manifold.Manifold, q int, candidates []int, opts core.Options, eActual, numCoeffCols int, ystar [][]float64, coeffs [][][]float64, cancel core.CancelFunc) core.ReturnCode {
	var indices []int
	var dists []float64
	var err error
	if opts.Distance == core.Wasserstein {
		indices, dists, err = distance.Wasserstein(lib, query, q, candidates, opts, cancel)
	} else {
		indices, dists, err = distance.Lp(lib, query, q, candidates, opts)
	}
	if err != nil {
		return core.UNKNOWN_ERROR
	}

	if opts.Algorithm == core.Smap {
		return predictSmapRow(lib, query, q, indices, dists, opts, eActual, numCoeffCols, ystar, coeffs)
	}

	return predictSimplexRow(lib, q, indices, dists, opts, eActual, ystar)
}

func predictSimplexRow(lib *manifold.Manifold, q int, indices []int, dists []float64, opts core.Options, eActual int, ystar [][]float64) core.ReturnCode {
	selIdx, selDist := neighbor.Select(indices, dists, opts.K)
	rc := neighbor.CheckSufficient(len(selIdx), core.Simplex, eActual)
	if rc != core.SUCCESS {
		return rc
	}

	yhats := predict.Simplex(lib, selIdx, selDist, opts.Thetas, opts.MissingValue)
	for t, v := range yhats {
		ystar[t][q] = v
	}

	return core.SUCCESS
}

func predictSmapRow(lib, query *manifold.Manifold, q int, indices []int, dists []float64, opts core.Options, eActual, numCoeffCols int, ystar [][]float64, coeffs [][][]float64) core.ReturnCode {
	minReq := neighbor.MinRequired(core.Smap, eActual)
	selIdx, selDist := neighbor.Select(indices, dists, opts.K)
	rc := neighbor.CheckSufficient(len(selIdx), core.Smap, eActual)
	if rc != core.SUCCESS && !opts.ForceCompute {
		return rc
	}

	queryRow := query.Row(q)
	yhat, c, err := predict.Smap(lib, queryRow, selIdx, selDist, opts.Thetas[0], opts.MissingValue, minReq, opts.ForceCompute)
	if err != nil {
		return core.INSUFFICIENT_UNIQUE
	}

	ystar[0][q] = yhat
	if opts.SaveMode {
		n := numCoeffCols
		if n > len(c) {
			n = len(c)
		}
		copy(coeffs[0][q], c[:n])
	}

	return core.SUCCESS
}

func mapValidationError(err error) core.ReturnCode {
	switch {
	case errors.Is(err, core.ErrInvalidAlgorithm), errors.Is(err, core.ErrInvalidDistance), errors.Is(err, core.ErrInvalidColumnMetric):
		return core.INVALID_ALGORITHM
	case errors.Is(err, core.ErrTooFewColumns):
		return core.TOO_FEW_VARIABLES
	default:
		return core.UNKNOWN_ERROR
	}
}
