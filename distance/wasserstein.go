// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/EDM-Developers/EDM/core"
	"github.com/EDM-Developers/EDM/manifold"
)

const wassersteinEps = 1e-6

// Wasserstein computes the 1-Wasserstein curve-matching distance from query
// row q of qm to every candidate row of lib, returning the surviving
// indices and distances with non-finite and exactly-zero results dropped
// (self-matches and degenerate transport plans). cancel is polled between
// candidates and again just before each candidate's transport solve; once it
// reports cancellation, remaining candidates are abandoned and the results
// gathered so far are returned.
func Wasserstein(lib, qm *manifold.Manifold, q int, candidates []int, opts core.Options, cancel core.CancelFunc) ([]int, []float64, error) {
	if lib.EActual() != qm.EActual() {
		return nil, nil, ErrShapeMismatch
	}
	if opts.Distance != core.Wasserstein {
		return nil, nil, ErrInvalidDistance
	}
	if cancel == nil {
		cancel = core.AlwaysContinue
	}

	queryBlock := qm.LaggedObservation(q)
	eX := qm.E()

	indices := make([]int, 0, len(candidates))
	dists := make([]float64, 0, len(candidates))

	for _, i := range candidates {
		if !cancel() {
			break
		}

		libBlock := lib.LaggedObservation(i)
		d, ok, cancelled := wassersteinPair(lib, qm, libBlock, queryBlock, i, q, eX, opts, cancel)
		if cancelled {
			break
		}
		if !ok {
			continue
		}
		if math.IsNaN(d) || math.IsInf(d, 0) || d == 0 {
			continue
		}
		indices = append(indices, i)
		dists = append(dists, d)
	}

	return indices, dists, nil
}

// wassersteinPair returns the transport cost between one candidate and the
// query, or ok=false if the pair yields no comparable channels, or
// cancelled=true if cancel reported cancellation just before the transport
// solve.
func wassersteinPair(lib, qm *manifold.Manifold, libBlock, queryBlock [][]float64, i, q, eX int, opts core.Options, cancel core.CancelFunc) (float64, bool, bool) {
	missing := opts.MissingValue
	T := len(libBlock)

	dropI := make([]bool, eX)
	dropQ := make([]bool, eX)
	for c := 0; c < T; c++ {
		for n := 0; n < eX; n++ {
			if libBlock[c][n] == missing {
				dropI[n] = true
			}
			if queryBlock[c][n] == missing {
				dropQ[n] = true
			}
		}
	}

	var survivingI, survivingJ []int
	if opts.MissingDistance == 0 {
		for n := 0; n < eX; n++ {
			if !dropI[n] {
				survivingI = append(survivingI, n)
			}
			if !dropQ[n] {
				survivingJ = append(survivingJ, n)
			}
		}
		if len(survivingI) == 0 || len(survivingJ) == 0 {
			return 0, false, false
		}
	} else {
		for n := 0; n < eX; n++ {
			survivingI = append(survivingI, n)
			survivingJ = append(survivingJ, n)
		}
	}

	gamma := wassersteinGamma(libBlock, T, missing, opts.AspectRatio)
	unlagged := unlaggedBaseline(lib, qm, i, q, opts)

	lenI, lenJ := len(survivingI), len(survivingJ)
	cost := make([][]float64, lenI)
	for r := range cost {
		cost[r] = make([]float64, lenJ)
		for c := range cost[r] {
			cost[r][c] = unlagged
		}
	}

	for c := 0; c < T; c++ {
		isDt := c == 1 && qm.EDt() > 0
		metricCol := channelMetricColumn(qm.E(), qm.EDt(), c)
		metric := opts.ColumnMetricAt(metricCol)

		for r, n := range survivingI {
			a := libBlock[c][n]
			for k, m := range survivingJ {
				b := queryBlock[c][m]

				var raw float64
				if a == missing || b == missing {
					raw = opts.MissingDistance
				} else if metric == core.CheckSame {
					if a != b {
						raw = 1
					}
				} else {
					raw = math.Abs(a - b)
				}
				if isDt {
					raw *= gamma
				}
				cost[r][k] += raw
			}
		}
	}

	supply := uniformMass(lenI)
	demand := uniformMass(lenJ)

	if !cancel() {
		return 0, false, true
	}

	var total float64
	if opts.ApproxWasserstein {
		total = sinkhornCost(cost, supply, demand, opts.SinkhornEpsilon, opts.SinkhornMaxIter)
	} else {
		total = TransportCost(cost, supply, demand)
	}

	return total, true, false
}

// channelMetricColumn maps a lag-block channel index back to a manifold
// column for per-channel metric lookup. Channel 0 is the x block (columns
// [0,E)); channel 1 is the dt block when present (columns [E,E+E_dt)).
// Lagged-extra channels have true width E-1 while the reshape assumes width
// E (see Manifold.LaggedObservation); their metric lookup uses the first
// column of the corresponding block as a best-effort approximation.
func channelMetricColumn(eX, eDt, channel int) int {
	if channel == 0 {
		return 0
	}
	if eDt > 0 && channel == 1 {
		return eX
	}
	idx := channel - 1
	if eDt > 0 {
		idx--
	}

	return eX + eDt + idx*(eX-1)
}

func wassersteinGamma(libBlock [][]float64, T int, missing, aspectRatio float64) float64 {
	if T < 2 {
		return 1
	}

	xMin, xMax := math.MaxFloat64, -math.MaxFloat64
	for _, v := range libBlock[0] {
		if v == missing {
			continue
		}
		if v < xMin {
			xMin = v
		}
		if v > xMax {
			xMax = v
		}
	}
	if xMin > xMax {
		return 1
	}

	tMax := -math.MaxFloat64
	for _, v := range libBlock[1] {
		if v == missing {
			continue
		}
		if v > tMax {
			tMax = v
		}
	}
	if tMax == -math.MaxFloat64 {
		tMax = 0
	}

	return aspectRatio * (xMax - xMin + wassersteinEps) / (tMax + wassersteinEps)
}

// unlaggedBaseline sums the row-independent contribution of unlagged extras
// plus the panel-mismatch penalty, mirroring the Lp kernel's treatment of
// the same columns.
func unlaggedBaseline(lib, qm *manifold.Manifold, i, q int, opts core.Options) float64 {
	d := 0.0
	if opts.PanelMode && opts.IDW > 0 && lib.Panel(i) != qm.Panel(q) {
		d += opts.IDW
	}

	start := lib.EActual() - (lib.EExtras() - lib.ELaggedExtras())
	for col := start; col < lib.EActual(); col++ {
		a := lib.Get(i, col)
		b := qm.Get(q, col)

		if a == opts.MissingValue || b == opts.MissingValue {
			d += opts.MissingDistance
			continue
		}
		if opts.ColumnMetricAt(col) == core.CheckSame {
			if a != b {
				d++
			}
		} else {
			d += math.Abs(a - b)
		}
	}

	return d
}

func uniformMass(n int) []float64 {
	mass := make([]float64, n)
	share := 1.0 / float64(n)
	for i := range mass {
		mass[i] = share
	}

	return mass
}
