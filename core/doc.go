// SPDX-License-Identifier: MIT

// Package core holds the shared vocabulary of the EDM engine: the MISSING
// sentinel, the algorithm/distance/column-metric enums, the functional-options
// Options record, the closed ReturnCode set and its aggregation rule, and the
// IO sink interface progress and error messages flow through.
//
// Nothing in this package touches a manifold, a distance, or a predictor —
// it is the vocabulary the other packages (manifold, distance, neighbor,
// predict, pool, edm) are all written against.
package core
