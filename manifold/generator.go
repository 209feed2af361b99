// SPDX-License-Identifier: MIT

package manifold

// Generator holds the raw input series immutably and materializes Manifold
// values on demand via CreateManifold.
type Generator struct {
	t []float64 // optional time stamps, len N
	x []float64 // primary observable, len N
	y []float64 // target series, len N

	extras           [][]float64 // each len N; first numExtrasLagged are lagged like x
	numExtrasLagged  int
	numExtras        int

	panelIDs []int     // optional, len N
	coX      []float64 // optional coprediction series, len N

	missing float64
	tau     int

	useDt        bool
	addDt0       bool
	cumulativeDt bool
	dtWeight     float64
}

// NewGenerator constructs a Generator over the given series. extras holds
// zero or more auxiliary series of length N; the first numExtrasLagged of
// them are embedded like x, the remainder contribute a single unlagged
// column each.
func NewGenerator(t, x, y []float64, extras [][]float64, numExtrasLagged int, missing float64, tau int) *Generator {
	return &Generator{
		t:               t,
		x:               x,
		y:               y,
		extras:          extras,
		numExtrasLagged: numExtrasLagged,
		numExtras:       len(extras),
		missing:         missing,
		tau:             tau,
	}
}

// AddCoprediction attaches a second primary series used in coprediction mode.
func (g *Generator) AddCoprediction(coX []float64) { g.coX = coX }

// AddDT enables the time-delta block. dtWeight scales every dt column;
// dt0 selects whether the zero-lag delta t[i]-t[i-τ] is included
// (E_dt = E-1+dt0); cumulativeDT accumulates a running sum of deltas
// instead of successive differences.
func (g *Generator) AddDT(dtWeight float64, dt0, cumulativeDT bool) {
	g.dtWeight = dtWeight
	g.useDt = true
	g.addDt0 = dt0
	g.cumulativeDt = cumulativeDT
}

// AddPanelIDs attaches integer group labels for panel data.
func (g *Generator) AddPanelIDs(panelIDs []int) { g.panelIDs = panelIDs }

// EDt returns the number of dt columns for embedding dimension E.
func (g *Generator) EDt(E int) int {
	if !g.useDt {
		return 0
	}
	extra := 0
	if g.addDt0 {
		extra = 1
	}

	return E - 1 + extra
}

// EExtras returns the number of extras columns for embedding dimension E:
// one unlagged column per non-lagged extra, plus (E-1) lagged columns per
// lagged extra.
func (g *Generator) EExtras(E int) int {
	numExtrasUnlagged := g.numExtras - g.numExtrasLagged

	return numExtrasUnlagged + g.numExtrasLagged*(E-1)
}

// EActual returns the total column count for embedding dimension E.
func (g *Generator) EActual(E int) int {
	return E + g.EDt(E) + g.EExtras(E)
}

// NumExtrasLagged returns how many extras are embedded like x.
func (g *Generator) NumExtrasLagged() int { return g.numExtrasLagged }

// NumExtras returns the total number of extras series.
func (g *Generator) NumExtras() int { return g.numExtras }

// N returns the length of the underlying series.
func (g *Generator) N() int { return len(g.x) }

// laggedValue resolves series[i-offset*tau], returning missing when the
// index falls below 0 or crosses a panel boundary.
func (g *Generator) laggedValue(series []float64, i, offset int) float64 {
	idx := i - offset*g.tau
	if idx < 0 {
		return g.missing
	}
	if g.panelIDs != nil && g.panelIDs[idx] != g.panelIDs[i] {
		return g.missing
	}

	return series[idx]
}

// CreateManifold materializes a Manifold from the rows selected by
// row_filter, using x (or co_x when copredict is true) for the lag block.
// prediction is a bookkeeping tag propagated unchanged; it does not alter
// layout.
func (g *Generator) CreateManifold(E int, rowFilter []bool, copredict, prediction bool) (Manifold, error) {
	_ = prediction // bookkeeping only, carried for callers that key off it

	if E < 1 {
		return Manifold{}, ErrInvalidE
	}
	if len(rowFilter) != g.N() {
		return Manifold{}, ErrFilterLength
	}
	if copredict && g.coX == nil {
		return Manifold{}, ErrCopredictWithoutCoX
	}

	lagSeries := g.x
	if copredict {
		lagSeries = g.coX
	}

	eDt := g.EDt(E)
	eExtras := g.EExtras(E)
	eLaggedExtras := g.numExtrasLagged * (E - 1)
	eActual := E + eDt + eExtras

	var indices []int
	for i, keep := range rowFilter {
		if keep {
			indices = append(indices, i)
		}
	}
	nobs := len(indices)

	data := make([]float64, nobs*eActual)
	y := make([]float64, nobs)
	var panelOut []int
	if g.panelIDs != nil {
		panelOut = make([]int, nobs)
	}

	for r, i := range indices {
		base := r * eActual
		col := 0

		// 1. E lag columns of x (or co_x under coprediction).
		for l := 0; l < E; l++ {
			data[base+col] = g.laggedValue(lagSeries, i, l)
			col++
		}

		// 2. eDt columns of (optionally cumulative) time deltas.
		if eDt > 0 {
			dtBase := 0
			if !g.addDt0 {
				dtBase = 1
			}
			running := 0.0
			for l := 0; l < eDt; l++ {
				hi := g.laggedValue(g.t, i, l+dtBase)
				lo := g.laggedValue(g.t, i, l+dtBase+1)
				var delta float64
				if hi == g.missing || lo == g.missing {
					delta = g.missing
				} else {
					delta = (hi - lo) * g.dtWeight
				}
				if g.cumulativeDt && delta != g.missing {
					if running == g.missing {
						// stays missing once broken
					} else {
						running += delta
					}
					data[base+col] = running
				} else {
					data[base+col] = delta
					if delta == g.missing {
						running = g.missing
					}
				}
				col++
			}
		}

		// 3. Lagged-extras columns, one E-1-wide block per lagged extra.
		for k := 0; k < g.numExtrasLagged; k++ {
			series := g.extras[k]
			for l := 1; l < E; l++ {
				data[base+col] = g.laggedValue(series, i, l)
				col++
			}
		}

		// 4. Unlagged-extras columns: present-time value only.
		for k := g.numExtrasLagged; k < g.numExtras; k++ {
			data[base+col] = g.laggedValue(g.extras[k], i, 0)
			col++
		}

		y[r] = g.y[i]
		if panelOut != nil {
			panelOut[r] = g.panelIDs[i]
		}
	}

	return Manifold{
		data:          data,
		y:             y,
		panelIDs:      panelOut,
		nobs:          nobs,
		eX:            E,
		eDt:           eDt,
		eLaggedExtras: eLaggedExtras,
		eExtras:       eExtras,
		eActual:       eActual,
		missing:       g.missing,
	}, nil
}
