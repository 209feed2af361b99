// SPDX-License-Identifier: MIT
// Package: EDM/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil   (pure/deterministic unless seeded)
//   • noiseSigma  = 0.0
//   • panels      = 1
//
// AI-Hints:
//   • Set WithSeed for reproducible stochastic series (noise draws).
//   • WithPanels controls how many independent panel_id blocks a generator
//     stitches together (for cross-sectional / panel-EDM fixtures).

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic draws; nil means the caller-provided seed is used
	// to construct a private stream.
	rng *rand.Rand

	// Sequence dataset controls (Logistic).
	noiseSigma float64 // >=0

	// panels is the number of independent panel blocks to stitch together;
	// generators consulting this field emit a parallel panel-id vector.
	panels int
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultNoiseSigma = 0.0 // Gaussian noise stdev
	defaultPanels     = 1   // single panel (flat series) by default
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		noiseSigma: defaultNoiseSigma,
		panels:     defaultPanels,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.panels < 1 {
		cfg.panels = defaultPanels
	}

	return cfg
}
