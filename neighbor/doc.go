// SPDX-License-Identifier: MIT

// Package neighbor selects the k nearest candidates from a distance vector
// produced by the distance package, applying a deterministic tie-break and
// a per-algorithm too-few-valid policy.
package neighbor
