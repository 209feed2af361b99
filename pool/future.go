// SPDX-License-Identifier: MIT

package pool

import "github.com/EDM-Developers/EDM/core"

// Future is a start/poll/await handle around one Run invocation, per spec
// §9's "async prediction" design note: the core supports starting a
// prediction, polling or awaiting it later, with cancellation honored the
// same way in between.
type Future struct {
	done      chan struct{}
	rcs       []core.ReturnCode
	aggregate core.ReturnCode
}

// StartAsync launches Run in a background goroutine and returns immediately
// with a handle to observe its completion.
func StartAsync(numRows, nthreads int, io core.IO, cancel core.CancelFunc, task Task) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		f.rcs, f.aggregate = Run(numRows, nthreads, io, cancel, task)
		close(f.done)
	}()

	return f
}

// Poll reports whether the run has finished without blocking.
func (f *Future) Poll() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the run finishes and returns its results.
func (f *Future) Await() ([]core.ReturnCode, core.ReturnCode) {
	<-f.done

	return f.rcs, f.aggregate
}
