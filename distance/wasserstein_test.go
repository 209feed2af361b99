package distance

import (
	"testing"

	"github.com/EDM-Developers/EDM/core"
	"github.com/EDM-Developers/EDM/manifold"
	"github.com/stretchr/testify/require"
)

func buildSingleRowManifold(t *testing.T, series []float64, e int) (manifold.Manifold, int) {
	t.Helper()
	mask := make([]bool, len(series))
	for i := range mask {
		mask[i] = true
	}
	gen := manifold.NewGenerator(nil, series, series, nil, 0, core.DefaultMissing, 1)
	m, err := gen.CreateManifold(e, mask, false, false)
	require.NoError(t, err)

	return m, len(series) - 1
}

func TestWassersteinTranslationDistanceIsOne(t *testing.T) {
	// Library row [1,2,3,4,5]: x[4]=1, x[3]=2, ..., x[0]=5.
	libSeries := []float64{5, 4, 3, 2, 1}
	// Query row [2,3,4,5,6]: y[4]=2, y[3]=3, ..., y[0]=6.
	querySeries := []float64{6, 5, 4, 3, 2}

	lib, libRow := buildSingleRowManifold(t, libSeries, 5)
	query, queryRow := buildSingleRowManifold(t, querySeries, 5)

	require.Equal(t, []float64{1, 2, 3, 4, 5}, lib.Row(libRow))
	require.Equal(t, []float64{2, 3, 4, 5, 6}, query.Row(queryRow))

	opts := core.NewOptions(core.WithDistance(core.Wasserstein), core.WithAspectRatio(1), core.WithMissingDistance(0))

	indices, dists, err := Wasserstein(&lib, &query, queryRow, []int{libRow}, opts, core.AlwaysContinue)
	require.NoError(t, err)
	require.Equal(t, []int{libRow}, indices)
	require.InDelta(t, 1.0, dists[0], 1e-6)
}

func TestWassersteinRejectsShapeMismatch(t *testing.T) {
	a, rowA := buildSingleRowManifold(t, []float64{1, 2, 3}, 2)
	b, _ := buildSingleRowManifold(t, []float64{1, 2, 3, 4}, 3)
	opts := core.NewOptions(core.WithDistance(core.Wasserstein))

	_, _, err := Wasserstein(&a, &b, 0, []int{rowA}, opts, core.AlwaysContinue)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestWassersteinRejectsWrongDistanceMetric(t *testing.T) {
	a, rowA := buildSingleRowManifold(t, []float64{1, 2, 3}, 2)
	opts := core.NewOptions(core.WithDistance(core.Euclidean))

	_, _, err := Wasserstein(&a, &a, rowA, []int{rowA}, opts, core.AlwaysContinue)
	require.ErrorIs(t, err, ErrInvalidDistance)
}

func TestWassersteinReversedQueryDegenerates(t *testing.T) {
	// Library row [1,2,3,4,5] against the reversed query row [5,4,3,2,1]:
	// both hold the same value multiset, so the optimal transport plan
	// matches equal values and the cost is exactly zero — filtered out
	// per the "reject exactly zero" rule shared with the Lp kernel.
	libSeries := []float64{5, 4, 3, 2, 1}
	querySeries := []float64{1, 2, 3, 4, 5}

	lib, libRow := buildSingleRowManifold(t, libSeries, 5)
	query, queryRow := buildSingleRowManifold(t, querySeries, 5)

	opts := core.NewOptions(core.WithDistance(core.Wasserstein), core.WithMissingDistance(0))

	indices, _, err := Wasserstein(&lib, &query, queryRow, []int{libRow}, opts, core.AlwaysContinue)
	require.NoError(t, err)
	require.Empty(t, indices)
}

func TestWassersteinStopsEarlyOnCancellation(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	m, _ := buildSingleRowManifold(t, series, 3)

	opts := core.NewOptions(core.WithDistance(core.Wasserstein), core.WithAspectRatio(1), core.WithMissingDistance(0))
	candidates := []int{2, 3, 4}

	calls := 0
	cancelAfterOne := func() bool {
		calls++

		return calls <= 1
	}

	indices, _, err := Wasserstein(&m, &m, 5, candidates, opts, cancelAfterOne)
	require.NoError(t, err)
	require.Less(t, len(indices), len(candidates))
}
