package builder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLogisticSeriesDeterministic(t *testing.T) {
	a := BuildLogisticSeries(50, 1)
	b := BuildLogisticSeries(50, 1)
	require.Equal(t, a, b)
	require.Len(t, a, 50)
}

func TestBuildLogisticSeriesStaysBounded(t *testing.T) {
	series := BuildLogisticSeries(200, 7)
	require.NotNil(t, series)
	for _, v := range series {
		require.GreaterOrEqual(t, v, -0.01)
		require.LessOrEqual(t, v, 1.01)
	}
}

func TestBuildLogisticSeriesInvalidSize(t *testing.T) {
	require.Nil(t, BuildLogisticSeries(0, 1))
	require.Nil(t, BuildLogisticSeries(-3, 1))
}

func TestBuildLogisticSeriesWithNoiseVaries(t *testing.T) {
	clean := BuildLogisticSeries(20, 1)
	noisy := BuildLogisticSeries(20, 1, WithNoise(0.05))
	require.NotEqual(t, clean, noisy)
}

func TestBuildLogisticPanelsShapeAndIDs(t *testing.T) {
	x, panelIDs := BuildLogisticPanels(10, 1, WithPanels(3))
	require.Len(t, x, 30)
	require.Len(t, panelIDs, 30)

	require.Equal(t, 0, panelIDs[0])
	require.Equal(t, 0, panelIDs[9])
	require.Equal(t, 1, panelIDs[10])
	require.Equal(t, 2, panelIDs[29])
}

func TestBuildLogisticPanelsDefaultsToOnePanel(t *testing.T) {
	x, panelIDs := BuildLogisticPanels(15, 1)
	require.Len(t, x, 15)
	for _, id := range panelIDs {
		require.Equal(t, 0, id)
	}
}

func TestBuildLogisticPanelsDistinctInitialConditions(t *testing.T) {
	x, _ := BuildLogisticPanels(5, 1, WithPanels(2))
	require.NotEqual(t, x[0], x[5])
}

func TestBuildLogisticPanelsInvalidSize(t *testing.T) {
	x, ids := BuildLogisticPanels(0, 1, WithPanels(2))
	require.Nil(t, x)
	require.Nil(t, ids)
}
