// SPDX-License-Identifier: MIT
// Package: EDM/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w` (see AI-Hints below).
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...), per package convention.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap lower-level errors with method context: builderErrorf("BuildLogisticSeries", "...: %w", err).
//   • Return ONLY these sentinels for validation classes (size/parameter range).
//   • Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates invalid sizes/lengths for a requested series
// (e.g., n < 1, panels < 1).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates that a WithX(...) option constructor received a
// meaningless or unsafe value (e.g., WithNoise(sigma<0), WithRand(nil)).
// Such violations panic in the option constructor by design;
// this sentinel is reserved for validations that must surface as errors
// rather than panics (e.g., runtime option resolution).
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; an error
// passed through a %w verb in format stays visible to errors.Is.
//
// Parameters:
//   - method: canonical generator name, e.g. "BuildLogisticSeries".
//   - format: format string for the inner message.
//   - args:   values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	inner := fmt.Errorf(format, args...)

	return fmt.Errorf("%s: %w", method, inner)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return builderErrorf("BuildLogisticSeries", "n must be >= 1, got %d: %w", n, ErrBadSize)
//    The %w verb preserves the sentinel (ErrBadSize/ErrOptionViolation) for
//    errors.Is, while the method name adds a deterministic context prefix.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
//    Provide edge cases: n=0, negative sigma, panels<1, nil rng.
