// SPDX-License-Identifier: MIT

// Package distance computes the per-neighbor distance vector from one query
// row to every candidate library row, under either the Lp family
// (Euclidean / MeanAbsoluteError) or the Wasserstein curve-matching metric.
package distance
