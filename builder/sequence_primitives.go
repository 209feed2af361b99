// SPDX-License-Identifier: MIT
// Package: EDM/builder
//
// sequence_primitives.go - shared defaults and helpers for series generators.
//
// Purpose:
//   - Provide deterministic RNG selection with cfg.rng priority.
//
// Contract:
//   - Pure helpers (no global state). Safe to import from impl_logistic.go.

package builder

import (
	"math/rand"
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
