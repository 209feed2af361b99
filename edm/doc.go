// SPDX-License-Identifier: MIT

// Package edm wires the manifold, distance, neighbor, predict, and pool
// packages into a single entry point:
//
//	Predict(options, generator, trainingMask, predictionMask, io, cancel)
//
// It builds the library and query manifolds, schedules one prediction task
// per query row across the worker pool, and reduces the per-row outputs
// into a Prediction record plus an aggregate return code.
package edm
