// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the manifold package.

package manifold

import "errors"

var (
	// ErrFilterLength is returned when a row-filter mask's length does not
	// match the generator's series length N.
	ErrFilterLength = errors.New("manifold: row filter length mismatch")

	// ErrCopredictWithoutCoX is returned when create_manifold is asked for
	// copredict=true but no co_x series was supplied via AddCoprediction.
	ErrCopredictWithoutCoX = errors.New("manifold: copredict requested without co_x data")

	// ErrInvalidE is returned when E < 1.
	ErrInvalidE = errors.New("manifold: embedding dimension E must be >= 1")

	// ErrOutOfRange is returned by Manifold accessors given out-of-bounds
	// row/column indices.
	ErrOutOfRange = errors.New("manifold: index out of range")
)
