// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel runs independent page jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is one unit of work. Jobs must not depend on each other.
type Job func() error

// WorkerPool is a pool of goroutines pulling jobs from a shared queue.
//
// ExecuteAll may be called from several goroutines, but not concurrently
// with Close.
type WorkerPool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for work := range p.queue {
		work()
	}
}

// ExecuteAll runs every job and waits for all of them to finish.
// It returns the error of the lowest-indexed failing job, so the result
// does not depend on scheduling. On a closed pool the jobs run on the
// calling goroutine.
func (p *WorkerPool) ExecuteAll(jobs []Job) error {
	if len(jobs) == 0 {
		return nil
	}
	if !p.running.Load() {
		return runSerial(jobs)
	}

	errs := make([]error, len(jobs))
	var done sync.WaitGroup
	done.Add(len(jobs))
	for i, job := range jobs {
		p.queue <- func() {
			defer done.Done()
			errs[i] = job()
		}
	}
	done.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Close stops the workers after queued work completes.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.queue)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Run executes jobs with at most workers goroutines. With one worker or a
// single job it runs them in order on the calling goroutine and stops at
// the first error.
func Run(workers int, jobs []Job) error {
	if workers == 1 || len(jobs) <= 1 {
		return runSerial(jobs)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := NewWorkerPool(min(workers, len(jobs)))
	defer p.Close()
	return p.ExecuteAll(jobs)
}

func runSerial(jobs []Job) error {
	for _, job := range jobs {
		if err := job(); err != nil {
			return err
		}
	}
	return nil
}
