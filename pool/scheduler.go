// SPDX-License-Identifier: MIT

package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/EDM-Developers/EDM/core"
)

// Task predicts a single query row and returns its per-task return code.
type Task func(row int) core.ReturnCode

// progressMilestones is the most coarse progress lines the pool emits over
// the run, regardless of numRows or worker count.
const progressMilestones = 10

// Run dispatches Task once per row in [0,numRows) across nthreads workers,
// polling cancel before every task. Once cancel reports false, no further
// tasks start: a row whose poll observed cancellation is marked BREAK_HIT,
// and every row never handed to a worker keeps its zero value
// (core.SUCCESS). The aggregate return code is then raised to at least
// BREAK_HIT so callers can distinguish a partial run from a clean one.
// Progress lines are emitted through io at coarse milestones, at most
// progressMilestones per run.
// Complexity: O(numRows) task dispatch, bounded parallelism nthreads.
func Run(numRows, nthreads int, io core.IO, cancel core.CancelFunc, task Task) ([]core.ReturnCode, core.ReturnCode) {
	rcs := make([]core.ReturnCode, numRows)
	if numRows == 0 {
		return rcs, core.SUCCESS
	}
	if nthreads < 1 {
		nthreads = 1
	}

	rows := make(chan int)
	var cancelled atomic.Bool
	var completed atomic.Int64
	milestoneStep := (numRows + progressMilestones - 1) / progressMilestones
	if milestoneStep < 1 {
		milestoneStep = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < nthreads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				if !cancel() {
					cancelled.Store(true)
					rcs[row] = core.BREAK_HIT
					continue
				}
				rcs[row] = task(row)

				n := completed.Add(1)
				if io != nil && n%int64(milestoneStep) == 0 {
					io.PrintAsync(fmt.Sprintf("predict: %d/%d rows complete", n, numRows))
				}
			}
		}()
	}

	for row := 0; row < numRows; row++ {
		if cancelled.Load() {
			break
		}
		rows <- row
	}
	close(rows)
	wg.Wait()

	aggregate := core.CombineAll(rcs)
	if cancelled.Load() {
		aggregate = core.Combine(aggregate, core.BREAK_HIT)
	}

	return rcs, aggregate
}
