// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool that splits index
// ranges across goroutines. A Pool is created once and reused by every bulk
// call, so the per-call cost is one channel send per participating worker.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(points), 1024, func(start, end int) {
//	    transform(points[start:end], out[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through a channel.
//
// The callbacks passed to ParallelFor and ParallelForBatched must not call
// back into the same Pool, and Close must not race with them.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one worker's share of a parallel call.
type task struct {
	fn       func()
	done     *sync.WaitGroup
	panicked *atomic.Pointer[any]
}

func (t task) execute() {
	defer t.done.Done()
	defer func() {
		if r := recover(); r != nil {
			t.panicked.CompareAndSwap(nil, &r)
		}
	}()
	t.fn()
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.execute()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained. A closed pool still
// accepts calls and runs them on the calling goroutine. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run hands fn(0) .. fn(workers-1) to the pool and waits for all of them.
// The first panic raised by a worker is re-raised on the caller.
func (p *Pool) run(workers int, fn func(w int)) {
	var wg sync.WaitGroup
	var panicked atomic.Pointer[any]
	wg.Add(workers)
	for w := range workers {
		p.workC <- task{fn: func() { fn(w) }, done: &wg, panicked: &panicked}
	}
	wg.Wait()
	if r := panicked.Load(); r != nil {
		panic(*r)
	}
}

// ParallelFor calls fn over contiguous, disjoint ranges covering [0, n) and
// blocks until all of them return. At most ceil(n/grain) ranges are used;
// when n <= grain, fn(0, n) runs on the calling goroutine.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	workers := min(p.numWorkers, (n+grain-1)/grain)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	p.run(workers, func(w int) {
		start := w * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForBatched calls fn over ranges of batch indices that workers claim
// with an atomic counter, which balances uneven per-index cost. It blocks
// until [0, n) is covered.
func (p *Pool) ParallelForBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	numBatches := (n + batch - 1) / batch
	workers := min(p.numWorkers, numBatches)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			start := int(next.Add(1)-1) * batch
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	})
}
