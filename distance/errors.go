// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrEmptyCandidates describes a query row compared against zero library
	// rows. Lp and Wasserstein do not return it; given no candidates they
	// return empty slices and a nil error.
	ErrEmptyCandidates = errors.New("distance: no candidate rows supplied")

	// ErrShapeMismatch is returned when the query and library manifolds
	// disagree on E_actual.
	ErrShapeMismatch = errors.New("distance: query/library column count mismatch")

	// ErrInvalidDistance is returned when a kernel is invoked with a
	// distance metric it does not implement.
	ErrInvalidDistance = errors.New("distance: unsupported distance metric")

	// ErrDegenerateCostMatrix describes a Wasserstein cost matrix with no
	// surviving columns. The Wasserstein kernel does not return it; it drops
	// such a candidate from its results instead.
	ErrDegenerateCostMatrix = errors.New("distance: wasserstein cost matrix is empty")
)
