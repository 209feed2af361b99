// SPDX-License-Identifier: MIT

// Package manifold builds and exposes the delay-embedded state space the
// rest of the EDM engine operates on.
//
// Generator holds the raw input series (x, y, optional t/extras/panel_ids/
// co_x) immutably and, given an embedding dimension E and a row filter,
// emits a Manifold: a packed row-major matrix plus a parallel y-vector and
// optional panel-id vector.
//
// Manifold itself is an immutable view: indexed access, missing-value
// queries, and the "lagged observation" T×E reshape the Wasserstein kernel
// consumes.
package manifold
