package garnet

import (
	"context"
	"fmt"
)

type workRequest struct {
	ctx  context.Context
	fn   func(*Ruby) (any, error)
	done chan workResult
}

type workResult struct {
	value any
	err   error
}

// Worker owns a runtime and serializes access to it from any number of
// goroutines. A Ruby is single-threaded; everything that touches it must
// go through Do.
type Worker struct {
	r        *Ruby
	requests chan workRequest
	quit     chan struct{}
	stopped  chan struct{}
}

// NewWorker starts a runtime on a dedicated goroutine.
func NewWorker(opts ...Option) *Worker {
	w := &Worker{
		requests: make(chan workRequest, 64),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	ready := make(chan struct{})
	go w.loop(opts, ready)
	<-ready
	return w
}

func (w *Worker) loop(opts []Option, ready chan struct{}) {
	defer close(w.stopped)
	w.r = New(opts...)
	close(ready)
	defer w.r.Close()
	for {
		select {
		case req := <-w.requests:
			if err := req.ctx.Err(); err != nil {
				req.done <- workResult{err: err}
				continue
			}
			req.done <- w.execute(req.fn)
		case <-w.quit:
			return
		}
	}
}

// execute runs fn, recovering panics into errors. The runtime's unwinds
// never escape fn because every garnet entry point protects them.
func (w *Worker) execute(fn func(*Ruby) (any, error)) (res workResult) {
	defer func() {
		if p := recover(); p != nil {
			w.r.methodLog.Errorf("panic in worker job: %v", p)
			res = workResult{err: fmt.Errorf("garnet: panic in worker job: %v", p)}
		}
	}()
	res.value, res.err = fn(w.r)
	return res
}

// Do runs fn on the runtime goroutine and waits for it. If ctx ends
// first, Do returns ctx.Err(); a job already running still completes.
func (w *Worker) Do(ctx context.Context, fn func(*Ruby) (any, error)) (any, error) {
	req := workRequest{ctx: ctx, fn: fn, done: make(chan workResult, 1)}
	select {
	case w.requests <- req:
	case <-w.stopped:
		return nil, ErrWorkerStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case res := <-req.done:
		return res.value, res.err
	case <-w.stopped:
		return nil, ErrWorkerStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stop closes the runtime and ends the worker goroutine. Pending jobs are
// dropped.
func (w *Worker) Stop() {
	select {
	case <-w.quit:
	default:
		close(w.quit)
	}
	<-w.stopped
}
