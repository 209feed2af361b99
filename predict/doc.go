// SPDX-License-Identifier: MIT

// Package predict turns a selected neighborhood into a scalar prediction:
// Simplex projection's exponentially weighted mean, or S-map's weighted
// least squares regression solved via gonum's thin SVD.
package predict
