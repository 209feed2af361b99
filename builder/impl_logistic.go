// SPDX-License-Identifier: MIT
// Package: EDM/builder
//
// impl_logistic.go - deterministic logistic-map series for EDM fixtures.
//
// Purpose:
//   - Emit reproducible scalar time series from the logistic map
//     x_{t+1} = r * x_t * (1 - x_t), the canonical low-dimensional chaotic
//     system used to exercise manifold/Simplex/S-map code paths.
//   - Optionally stitch several independently-seeded panel blocks end to end
//     and return a matching panel-id vector, for panel-mode neighbor tests.
//
// Contract:
//   - BuildLogisticSeries(n, seed, opts...) -> (x []float64).
//   - BuildLogisticPanels(n, seed, opts...) -> (x []float64, panelIDs []int).
//   - On invalid input (n<1 or r outside (0,4]) => return nil; never panic.
//   - O(n) time; O(n) memory.
//
// Determinism policy:
//   - BuildLogisticSeries: if cfg.rng != nil -> use cfg.rng (shared stream
//     via WithSeed(...)); else -> rng := rand.New(rand.NewSource(seed)).
//   - BuildLogisticPanels: each block always draws from its own stream
//     seeded from seed and the block index; cfg.rng is not used.
//
// AI-Hints:
//   - r=3.6..4.0 gives chaotic dynamics; r<3.0 settles into a fixed point or
//     small cycle, useful for testing near-degenerate Simplex neighborhoods.
//   - Combine with WithNoise to add observational noise on top of the map.

package builder

import (
	"math/rand"
)

// -----------------------------
// Defaults specific to the logistic map.
// -----------------------------
const (
	defLogisticR  = 3.7  // Default growth-rate parameter r in (0,4].
	defLogisticX0 = 0.4  // Default initial condition x0 in (0,1).
	minLogisticR  = 1e-9 // Lower bound guard for r.
	maxLogisticR  = 4.0  // Upper bound: map stays in [0,1] for r<=4.
)

// seqLogisticParams groups resolved knobs for the logistic-map generator.
type seqLogisticParams struct {
	r     float64 // growth rate in (0,4]
	x0    float64 // initial condition in (0,1)
	sigma float64 // observational noise sigma >= 0
}

// extractLogisticParams maps builderConfig -> seqLogisticParams.
func extractLogisticParams(cfg builderConfig) seqLogisticParams {
	return seqLogisticParams{
		r:     defLogisticR,
		x0:    defLogisticX0,
		sigma: cfg.noiseSigma,
	}
}

// -----------------------------
// Public API.
// -----------------------------

// BuildLogisticSeries returns a length-n scalar series from the logistic
// map x_{t+1} = r*x_t*(1-x_t), plus optional Gaussian observation noise.
func BuildLogisticSeries(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractLogisticParams(cfg)
	if p.r <= minLogisticR || p.r > maxLogisticR || p.sigma < 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	x := p.x0
	for i := 0; i < n; i++ {
		val := x
		if p.sigma > 0 {
			val += p.sigma * rng.NormFloat64()
		}
		out[i] = val
		x = p.r * x * (1 - x)
	}

	return out
}

// BuildLogisticPanels stitches k independently-seeded logistic-map blocks of
// length n each (k = cfg.panels, set via WithPanels) into a single series and
// a parallel panel-id vector of the same length. Each block uses a distinct
// initial condition derived deterministically from the block index and the
// panel count, and a noise stream seeded from seed and the block index, so
// panel boundaries are reproducible without sharing RNG state across blocks
// in a way that would make block j depend on how block j-1 drew from the
// stream.
func BuildLogisticPanels(n int, seed int64, opts ...BuilderOption) (x []float64, panelIDs []int) {
	if n < 1 {
		return nil, nil
	}

	cfg := newBuilderConfig(opts...)
	k := cfg.panels

	x = make([]float64, 0, n*k)
	panelIDs = make([]int, 0, n*k)

	for panel := 0; panel < k; panel++ {
		blockSeed := seed + int64(panel)*2654435761
		blockRng := rand.New(rand.NewSource(blockSeed))
		blockCfg := cfg
		blockCfg.rng = blockRng
		x0 := defLogisticX0 + 0.1*float64(panel)/float64(k+1)

		p := extractLogisticParams(blockCfg)
		p.x0 = x0
		if p.r <= minLogisticR || p.r > maxLogisticR || p.sigma < 0 {
			return nil, nil
		}

		xt := p.x0
		for i := 0; i < n; i++ {
			val := xt
			if p.sigma > 0 {
				val += p.sigma * blockRng.NormFloat64()
			}
			x = append(x, val)
			panelIDs = append(panelIDs, panel)
			xt = p.r * xt * (1 - xt)
		}
	}

	return x, panelIDs
}
