package manifold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSimpleManifold(t *testing.T) Manifold {
	t.Helper()
	x := []float64{10, 11, 12, 13, 14}
	y := []float64{1, 2, 3, 4, 5}
	gen := NewGenerator(nil, x, y, nil, 0, missing, 1)
	m, err := gen.CreateManifold(2, allTrue(len(x)), false, false)
	require.NoError(t, err)

	return m
}

func TestManifoldAtBoundsChecked(t *testing.T) {
	m := buildSimpleManifold(t)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = m.At(0, m.EActual())
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestManifoldRowAndXAccessors(t *testing.T) {
	m := buildSimpleManifold(t)

	row := m.Row(4)
	require.Len(t, row, m.EActual())
	require.Equal(t, 14.0, row[0])
	require.Equal(t, 13.0, row[1])

	require.Equal(t, 14.0, m.X(4, 0))
	require.Equal(t, 13.0, m.X(4, 1))
}

func TestManifoldMissingQueries(t *testing.T) {
	m := buildSimpleManifold(t)

	require.True(t, m.AnyMissing(0))
	require.True(t, m.AnyNotMissing(0))
	require.Equal(t, 1, m.NumNotMissing(0))

	require.False(t, m.AnyMissing(4))
	require.Equal(t, 2, m.NumNotMissing(4))
}

func TestManifoldYAndNobs(t *testing.T) {
	m := buildSimpleManifold(t)

	require.Equal(t, 5, m.Nobs())
	require.Equal(t, 5, m.YSize())
	require.Equal(t, 3.0, m.Y(2))
}

func TestManifoldRange(t *testing.T) {
	m := buildSimpleManifold(t)
	require.Equal(t, 4.0, m.Range())
}

func TestManifoldPanelDefaultsToZero(t *testing.T) {
	m := buildSimpleManifold(t)
	require.Nil(t, m.PanelIDs())
	require.Equal(t, 0, m.Panel(0))
}

func TestManifoldLaggedObservationWithDt(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	tm := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	gen := NewGenerator(tm, x, x, nil, 0, missing, 1)
	gen.AddDT(1.0, true, false)

	E := 2
	m, err := gen.CreateManifold(E, allTrue(len(x)), false, false)
	require.NoError(t, err)
	require.Equal(t, E, m.EDt())

	block := m.LaggedObservation(5)
	require.Len(t, block, 2) // x row + dt row
	require.Len(t, block[0], E)
	require.Equal(t, 5.0, block[0][0])
	require.Equal(t, 4.0, block[0][1])
}
