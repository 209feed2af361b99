// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic time series for
// exercising and testing the EDM engine: logistic-map trajectories with
// optional additive Gaussian noise.
//
// All generators share one functional-options configuration
// (BuilderOption / builderConfig). BuildLogisticSeries either seeds a
// private RNG per call (the seed argument) or uses a shared *rand.Rand
// supplied via WithRand/WithSeed to keep several generated series mutually
// reproducible within one test; BuildLogisticPanels always seeds one
// private RNG per block from the seed argument.
//
// BuildLogisticPanels additionally emits a panel-id vector alongside its
// series, for exercising panel-mode neighbor exclusion in the manifold and
// neighbor packages.
package builder
