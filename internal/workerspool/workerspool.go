// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool implements a soft-bounded pool of goroutines, used to split the work of one
// transform over disjoint regions of its output.
package workerspool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool controls how many tasks run in parallel.
//
// The limit is a soft target: tasks that wait on other tasks (see WorkerIsAsleep) temporarily raise it.
type Pool struct {
	// maxParallelism is a soft target on the limit of parallel work to do.
	// The actual number of goroutines is higher than that, because of waits and such.
	maxParallelism int
	mu             sync.Mutex
	cond           sync.Cond // Signaled whenever numRunning is decreased.
	numRunning     int

	// extraParallelism is temporarily increased when a worker goes to sleep.
	extraParallelism atomic.Int32
}

// New returns a new Pool of workers with the default parallelism (runtime.NumCPU()).
func New() *Pool {
	return NewWithParallelism(runtime.NumCPU())
}

// NewWithParallelism returns a new Pool with the given maxParallelism, see SetMaxParallelism.
func NewWithParallelism(maxParallelism int) *Pool {
	w := &Pool{maxParallelism: maxParallelism}
	w.cond = sync.Cond{L: &w.mu}
	return w
}

// IsEnabled returns whether parallelism is enabled (maxParallelism is != 0)
func (w *Pool) IsEnabled() bool {
	return w.maxParallelism != 0
}

// IsUnlimited returns whether parallelism is unlimited (maxParallelism < 0)
func (w *Pool) IsUnlimited() bool {
	return w.maxParallelism < 0
}

// MaxParallelism is a soft-target for parallelism (the limit of goroutines is higher that this).
// If set to 0 parallelism is disabled.
// If set to -1 parallelism is unlimited.
func (w *Pool) MaxParallelism() int {
	return w.maxParallelism
}

// SetMaxParallelism sets the maxParallelism.
//
// It should only be changed before any workers start running.
func (w *Pool) SetMaxParallelism(maxParallelism int) {
	w.maxParallelism = maxParallelism
}

const goroutineToParallelismRatio = 2

// lockedIsFull returns whether all available workers are in use.
//
// It must be called with Pool.mu acquired.
func (w *Pool) lockedIsFull() bool {
	if w.maxParallelism == 0 {
		return true
	} else if w.maxParallelism < 0 {
		return false
	}
	return w.numRunning >= goroutineToParallelismRatio*w.maxParallelism+int(w.extraParallelism.Load())
}

// WaitToStart waits until there is a worker available to run the task.
//
// If parallelism is disabled (maxParallelism is 0), it runs the task inline and returns when it is finished.
func (w *Pool) WaitToStart(task func()) {
	if w.IsUnlimited() {
		go task()
		return
	} else if w.maxParallelism == 0 {
		task()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for w.lockedIsFull() {
		w.cond.Wait()
	}
	w.lockedRunTaskInGoroutine(task)
}

// lockedRunTaskInGoroutine and keep tabs on w.numRunning.
//
// It must be called with Pool.mu acquired.
func (w *Pool) lockedRunTaskInGoroutine(task func()) {
	w.numRunning++
	go func() {
		task()
		w.mu.Lock()
		w.numRunning--
		w.cond.Signal()
		w.mu.Unlock()
	}()
}

// StartIfAvailable runs the task in a separate goroutine, if there are enough workers left.
// It returns true if it found workers to run the function, false otherwise.
//
// It's up to the caller to synchronize the end of the function execution.
func (w *Pool) StartIfAvailable(task func()) bool {
	if w.IsUnlimited() {
		go task()
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lockedIsFull() {
		return false
	}
	w.lockedRunTaskInGoroutine(task)
	return true
}

// WorkerIsAsleep indicates the worker (the one that called the method) is going to sleep waiting
// for other workers, and temporarily increases the available number of workers.
//
// Call WorkerRestarted when the worker is ready to run again.
func (w *Pool) WorkerIsAsleep() {
	w.extraParallelism.Add(1)
}

// WorkerRestarted indicates the worker (the one that called the method) is ready to run again.
// It should only be called after WorkerIsAsleep.
func (w *Pool) WorkerRestarted() {
	w.extraParallelism.Add(-1)
}

// NumChunks returns in how many chunks ParallelFor splits n items with the given minimum chunk size.
// It is 1 if parallelism is disabled or n is not larger than minChunk.
func (w *Pool) NumChunks(n, minChunk int) int {
	if !w.IsEnabled() || n <= minChunk || n <= 1 {
		return 1
	}
	minChunk = max(minChunk, 1)
	numChunks := (n + minChunk - 1) / minChunk
	if !w.IsUnlimited() {
		numChunks = min(numChunks, w.maxParallelism)
	}
	return max(numChunks, 1)
}

// ParallelFor splits the range [0, n) in contiguous chunks of at least minChunk items (but at most
// one per unit of parallelism) and calls fn(start, end) for each chunk, returning when all are finished.
//
// The calling goroutine runs the last chunk itself, and chunks that find no free worker also run inline,
// so nested calls don't deadlock. Only while waiting for the other chunks is the caller counted as asleep,
// letting other tasks take its slot.
//
// fn must only write to the region of the output corresponding to its chunk.
func (w *Pool) ParallelFor(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	numChunks := w.NumChunks(n, minChunk)
	if numChunks == 1 {
		fn(0, n)
		return
	}
	chunkSize := (n + numChunks - 1) / numChunks
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		if end == n {
			fn(start, end)
			break
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			fn(start, end)
		}
		if !w.StartIfAvailable(task) {
			task()
		}
	}
	w.WorkerIsAsleep()
	wg.Wait()
	w.WorkerRestarted()
}
