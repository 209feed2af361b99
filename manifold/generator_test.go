package manifold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const missing = -1.0e300

func allTrue(n int) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}

	return mask
}

func TestCreateManifoldShapeAndPopcount(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := append([]float64(nil), x...)
	gen := NewGenerator(nil, x, y, nil, 0, missing, 1)

	mask := allTrue(len(x))
	mask[3] = false
	mask[7] = false

	m, err := gen.CreateManifold(2, mask, false, false)
	require.NoError(t, err)
	require.Equal(t, 8, m.Nobs())
	require.Equal(t, gen.EActual(2), m.EActual())
	require.Equal(t, 2, m.EActual())
}

func TestCreateManifoldLagColumns(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := append([]float64(nil), x...)
	gen := NewGenerator(nil, x, y, nil, 0, missing, 1)

	m, err := gen.CreateManifold(3, allTrue(len(x)), false, false)
	require.NoError(t, err)

	// Row for original index 4: x[4], x[3], x[2].
	require.Equal(t, 4.0, m.Get(4, 0))
	require.Equal(t, 3.0, m.Get(4, 1))
	require.Equal(t, 2.0, m.Get(4, 2))

	// Row for original index 0: only x[0] is defined, the rest are MISSING.
	require.Equal(t, 0.0, m.Get(0, 0))
	require.Equal(t, missing, m.Get(0, 1))
	require.Equal(t, missing, m.Get(0, 2))
}

func TestCreateManifoldFilterLengthMismatch(t *testing.T) {
	x := []float64{0, 1, 2}
	gen := NewGenerator(nil, x, x, nil, 0, missing, 1)
	_, err := gen.CreateManifold(2, []bool{true, true}, false, false)
	require.ErrorIs(t, err, ErrFilterLength)
}

func TestCreateManifoldPanelBoundary(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	panels := []int{0, 0, 0, 1, 1, 1}
	gen := NewGenerator(nil, x, x, nil, 0, missing, 1)
	gen.AddPanelIDs(panels)

	m, err := gen.CreateManifold(2, allTrue(len(x)), false, false)
	require.NoError(t, err)

	// Row 3 is the first observation of panel 1; its lag would reach into
	// panel 0 and must be MISSING.
	require.Equal(t, 3.0, m.Get(3, 0))
	require.Equal(t, missing, m.Get(3, 1))

	// Row 4 stays within panel 1.
	require.Equal(t, 4.0, m.Get(4, 0))
	require.Equal(t, 3.0, m.Get(4, 1))
}

func TestCreateManifoldCopredictRequiresCoX(t *testing.T) {
	x := []float64{0, 1, 2}
	gen := NewGenerator(nil, x, x, nil, 0, missing, 1)
	_, err := gen.CreateManifold(2, allTrue(3), true, false)
	require.ErrorIs(t, err, ErrCopredictWithoutCoX)

	gen.AddCoprediction([]float64{9, 8, 7})
	_, err = gen.CreateManifold(2, allTrue(3), true, false)
	require.NoError(t, err)
}

func TestEActualWithExtrasAndDt(t *testing.T) {
	x := make([]float64, 10)
	t_ := make([]float64, 10)
	extraLagged := make([]float64, 10)
	extraUnlagged := make([]float64, 10)
	gen := NewGenerator(t_, x, x, [][]float64{extraLagged, extraUnlagged}, 1, missing, 1)
	gen.AddDT(1.0, true, false)

	E := 3
	// E_dt = E-1+1 = 3; E_extras = 1 (unlagged) + 1*(E-1) = 3; E_actual = 3+3+3=9.
	require.Equal(t, 3, gen.EDt(E))
	require.Equal(t, 3, gen.EExtras(E))
	require.Equal(t, 9, gen.EActual(E))
}
