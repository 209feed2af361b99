package pool

import (
	"sync/atomic"
	"testing"

	"github.com/EDM-Developers/EDM/core"
	"github.com/stretchr/testify/require"
)

func TestRunAllSuccess(t *testing.T) {
	rcs, agg := Run(20, 4, core.NopIO{}, core.AlwaysContinue, func(row int) core.ReturnCode {
		return core.SUCCESS
	})
	require.Equal(t, core.SUCCESS, agg)
	for _, rc := range rcs {
		require.Equal(t, core.SUCCESS, rc)
	}
}

func TestRunAggregatesWorstCode(t *testing.T) {
	rcs, agg := Run(10, 2, core.NopIO{}, core.AlwaysContinue, func(row int) core.ReturnCode {
		if row == 3 {
			return core.INSUFFICIENT_UNIQUE
		}
		return core.SUCCESS
	})
	require.Equal(t, core.INSUFFICIENT_UNIQUE, agg)
	require.Equal(t, core.INSUFFICIENT_UNIQUE, rcs[3])
}

func TestRunCancellationYieldsBreakHit(t *testing.T) {
	var completed atomic.Int64
	cancel := func() bool {
		return completed.Load() < 1
	}

	rcs, agg := Run(50, 4, core.NopIO{}, cancel, func(row int) core.ReturnCode {
		completed.Add(1)
		return core.SUCCESS
	})

	require.Equal(t, core.BREAK_HIT, agg)
	require.Len(t, rcs, 50)
}

func TestRunEmptyRows(t *testing.T) {
	rcs, agg := Run(0, 4, core.NopIO{}, core.AlwaysContinue, func(row int) core.ReturnCode {
		t.Fatal("task should never be called for zero rows")
		return core.SUCCESS
	})
	require.Empty(t, rcs)
	require.Equal(t, core.SUCCESS, agg)
}

func TestRunClampsThreadsBelowOne(t *testing.T) {
	rcs, agg := Run(3, 0, core.NopIO{}, core.AlwaysContinue, func(row int) core.ReturnCode {
		return core.SUCCESS
	})
	require.Len(t, rcs, 3)
	require.Equal(t, core.SUCCESS, agg)
}

func TestFutureStartPollAwait(t *testing.T) {
	block := make(chan struct{})
	f := StartAsync(1, 1, core.NopIO{}, core.AlwaysContinue, func(row int) core.ReturnCode {
		<-block
		return core.SUCCESS
	})

	require.False(t, f.Poll())
	close(block)

	rcs, agg := f.Await()
	require.Equal(t, core.SUCCESS, agg)
	require.Equal(t, []core.ReturnCode{core.SUCCESS}, rcs)
	require.True(t, f.Poll())
}
