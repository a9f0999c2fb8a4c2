// worker/pool.go
package worker

import "context"

// Job produces one output.
type Job[T any] func() T

// Result pairs a job's output with the id it was submitted under.
type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines. Outputs are
// delivered on Results in completion order, or gathered with Collect.
type Pool[T any] struct {
	jobs    chan task[T]
	results chan Result[T]
	pending int
}

type task[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workers goroutines. The results channel holds up to
// capacity outputs, so with capacity >= the number of jobs a worker never
// blocks even when nobody collects.
func NewPool[T any](workers int, capacity int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan task[T], capacity),
		results: make(chan Result[T], capacity),
	}

	for range workers {
		go p.run()
	}

	return p
}

func (p *Pool[T]) run() {
	for t := range p.jobs {
		p.results <- Result[T]{JobID: t.id, Output: t.fn()}
	}
}

// Submit queues a job. It is not safe for concurrent use with Collect.
func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.pending++
	p.jobs <- task[T]{id: id, fn: fn}
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Collect waits for every submitted job that has not been collected yet
// and returns the outputs keyed by job id. When ctx ends first it returns
// what arrived so far together with ctx.Err().
func (p *Pool[T]) Collect(ctx context.Context) (map[string]T, error) {
	out := make(map[string]T, p.pending)
	for p.pending > 0 {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case r := <-p.results:
			p.pending--
			out[r.JobID] = r.Output
		}
	}
	return out, nil
}

// Close stops the workers once queued jobs are taken. Submit must not be
// called afterwards.
func (p *Pool[T]) Close() {
	close(p.jobs)
}
