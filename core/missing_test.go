package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	require.True(t, IsMissing(DefaultMissing, DefaultMissing))
	require.False(t, IsMissing(0.0, DefaultMissing))
}

func TestAnyMissingAndCountNotMissing(t *testing.T) {
	vs := []float64{1, 2, DefaultMissing, 4}
	require.True(t, AnyMissing(vs, DefaultMissing))
	require.Equal(t, 3, CountNotMissing(vs, DefaultMissing))
	require.False(t, AnyMissing([]float64{1, 2}, DefaultMissing))
}
