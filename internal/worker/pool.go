// Package worker provides a worker pool for replaying move scripts in
// parallel. Each job gets its own game, so jobs share no state.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/turnchess/internal/script"
)

// Job is a script to replay.
type Job struct {
	Script *script.Script
	Index  int // Original index for tracking
}

// Result is the outcome of replaying one script.
type Result struct {
	Index    int
	Name     string
	Plies    int    // moves committed, across game restarts
	Rejected int    // moves refused
	Wins     [2]int // games won, indexed by chess.Colour
	FinalFEN string
	Skipped  bool // not replayed because the pool was stopped
	Err      error
}

// ReplayFunc is the function signature for processing a job.
type ReplayFunc func(job Job) Result

// Pool manages a pool of workers for parallel replay.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	stopWhen   func(Result) bool
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopWhen stops the pool after the first result for which stop
// returns true. Jobs not yet started are reported as skipped.
func WithStopWhen(stop func(Result) bool) PoolOption {
	return func(p *Pool) {
		p.stopWhen = stop
	}
}

// NewPool creates a worker pool. Defaults: 1 worker, buffer size of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			p.results <- Result{Index: job.Index, Name: job.Script.Name, Skipped: true}
			continue
		}
		r := p.replay(job)
		if p.stopWhen != nil && p.stopWhen(r) {
			p.Stop()
		}
		p.results <- r
	}
}

// Submit submits a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop signals workers to stop processing new jobs.
// Jobs already queued are drained and reported as skipped.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, replays every script and returns the results in
// script order. The pool cannot be reused afterwards.
func (p *Pool) Run(scripts []*script.Script) []Result {
	p.Start()
	go func() {
		for i, sc := range scripts {
			p.Submit(Job{Script: sc, Index: i})
		}
		p.Close()
	}()

	results := make([]Result, 0, len(scripts))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
