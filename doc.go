// Package edm is a numeric engine for Empirical Dynamic Modeling: delay
// embedding, Simplex projection, S-map, and Wasserstein curve matching over
// scalar and panel time series.
//
// What is EDM?
//
//	A concurrent, dependency-light engine that brings together:
//		• Manifold generation: lag embedding with dt columns, extras, panels
//		• Distance kernels: Euclidean, mean absolute error, optimal-transport
//		  (Wasserstein) curve matching
//		• Neighbor selection: k-nearest with deterministic tie-breaking
//		• Predictors: Simplex projection and S-map weighted local regression
//		• A cancellable worker pool scheduling one task per query row
//
// Why this shape?
//
//   - A closed, ordered return-code taxonomy instead of ad hoc errors on
//     the worker boundary
//   - Deterministic tie-breaking and column ordering, so runs reproduce
//     bitwise under a fixed thread count
//   - Pure core: the RNG seed and IO sink are inputs, not globals
//
// Under the hood, everything is organized under focused subpackages:
//
//	builder/   — synthetic logistic-map series generators (flat and panel) for tests and demos
//	core/      — Options, the return-code enum, the IO sink, and the missing-value sentinel
//	manifold/  — ManifoldGenerator and the packed Manifold row layout
//	distance/  — Lp and Wasserstein distance kernels
//	neighbor/  — k-nearest selection and per-algorithm sufficiency checks
//	predict/   — Simplex and S-map predictors
//	pool/      — the cancellable worker-pool scheduler and async Future
//	edm/       — Predict, the single external entry point
//
// Quick sketch of one prediction:
//
//	gen := manifold.NewGenerator(nil, x, y, nil, 0, core.DefaultMissing, tau)
//	opts := core.NewOptions(core.WithE(2), core.WithAlgorithm(core.Simplex), core.WithK(3))
//	pred, rc := edm.Predict(opts, gen, trainingMask, predictionMask, io, cancel)
package edm
