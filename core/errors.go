// SPDX-License-Identifier: MIT
//
// errors.go — sentinel error set for the core package.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm should panic on user-triggered error conditions;
// panics are reserved for functional-option constructors (WithX) rejecting
// programmer-supplied nonsense at build time.

package core

import "errors"

var (
	// ErrInvalidAlgorithm is returned when Options.Algorithm is outside the
	// closed Algorithm enum. Callers should map this to INVALID_ALGORITHM.
	ErrInvalidAlgorithm = errors.New("core: invalid algorithm")

	// ErrInvalidDistance is returned when Options.Distance is outside the
	// closed DistanceMetric enum.
	ErrInvalidDistance = errors.New("core: invalid distance metric")

	// ErrInvalidColumnMetric is returned when a per-column metric entry is
	// outside the closed ColumnMetric enum.
	ErrInvalidColumnMetric = errors.New("core: invalid column metric")

	// ErrNoThetas is returned when Options.Thetas is empty; every predictor
	// needs at least one theta.
	ErrNoThetas = errors.New("core: no theta values supplied")

	// ErrNegativeTheta is returned when a theta value is negative.
	ErrNegativeTheta = errors.New("core: theta must be non-negative")

	// ErrTooFewColumns is returned by Options.Validate when the manifold has
	// no columns (eActual <= 0).
	ErrTooFewColumns = errors.New("core: too few manifold columns")

	// ErrMismatchedMasks describes training and prediction masks whose length
	// differs from the series length N. edm.Predict reports that case as
	// UNKNOWN_ERROR and does not return this error.
	ErrMismatchedMasks = errors.New("core: row mask length mismatch")
)
