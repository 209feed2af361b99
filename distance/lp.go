// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/EDM-Developers/EDM/core"
	"github.com/EDM-Developers/EDM/manifold"
)

// Lp computes the Lp-family distance (Euclidean or MeanAbsoluteError) from
// query row q of qm to every row named in candidates within lib. It returns
// two parallel slices: the surviving candidate indices and their distances,
// with self-matches (d==0) and undefined rows (d==missing) already filtered
// out.
// Complexity: O(len(candidates) * E_actual).
func Lp(lib, qm *manifold.Manifold, q int, candidates []int, opts core.Options) ([]int, []float64, error) {
	if lib.EActual() != qm.EActual() {
		return nil, nil, ErrShapeMismatch
	}
	if opts.Distance != core.Euclidean && opts.Distance != core.MeanAbsoluteError {
		return nil, nil, ErrInvalidDistance
	}

	eActual := lib.EActual()
	missing := opts.MissingValue

	indices := make([]int, 0, len(candidates))
	dists := make([]float64, 0, len(candidates))

	for _, i := range candidates {
		d, ok := rowDistance(lib, qm, i, q, eActual, missing, opts)
		if !ok || d == 0 {
			continue
		}
		indices = append(indices, i)
		dists = append(dists, d)
	}

	return indices, dists, nil
}

// rowDistance computes the distance between library row i and query row q,
// returning ok=false when the pair is undefined (a missing cell under
// missing_distance=0).
func rowDistance(lib, qm *manifold.Manifold, i, q, eActual int, missing float64, opts core.Options) (float64, bool) {
	d := 0.0
	if opts.PanelMode && opts.IDW > 0 && lib.Panel(i) != qm.Panel(q) {
		d += opts.IDW
	}

	for j := 0; j < eActual; j++ {
		libVal := lib.Get(i, j)
		queryVal := qm.Get(q, j)

		var raw float64
		if libVal == missing || queryVal == missing {
			if opts.MissingDistance == 0 {
				return 0, false
			}
			raw = opts.MissingDistance
		} else if opts.ColumnMetricAt(j) == core.CheckSame {
			if libVal != queryVal {
				raw = 1
			}
		} else {
			raw = math.Abs(libVal - queryVal)
		}

		if opts.Distance == core.Euclidean {
			d += raw * raw
		} else {
			d += raw / float64(eActual)
		}
	}

	if opts.Distance == core.Euclidean {
		d = math.Sqrt(d)
	}

	return d, true
}
