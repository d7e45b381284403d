// Package syncfile persists the most recent sync snapshot on disk.
package syncfile

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/syncvault-go/internal/telemetry/logger"
	"github.com/yndnr/syncvault-go/internal/telemetry/metric"
)

// ErrStoreClosed is delivered on the completion channel of work
// submitted after Close.
var ErrStoreClosed = errors.New("syncfile: store is closed")

// job is one unit of work executed by the store worker.
type job struct {
	id   string // ULID for log correlation
	name string
	run  func() error
	done chan error
}

// queue is the serial worker shared by all writes of one store
// instance. Jobs execute in strict FIFO order; submission never
// blocks. A barrier submission additionally blocks the caller until
// the worker reaches it, which is how reads observe every write
// enqueued earlier from the same goroutine.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []job
	closed bool

	stopped chan struct{}

	log logger.Logger
	met *metric.Registry
}

func newQueue(log logger.Logger, met *metric.Registry) *queue {
	q := &queue{
		stopped: make(chan struct{}),
		log:     log,
		met:     met,
	}
	q.cond = sync.NewCond(&q.mu)
	go q.loop()
	return q
}

// enqueue submits a job and returns immediately. The returned channel
// is buffered and receives the job's outcome exactly once, so
// fire-and-forget callers may discard it without leaking the worker.
func (q *queue) enqueue(name string, run func() error) <-chan error {
	done := make(chan error, 1)

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		done <- ErrStoreClosed
		return done
	}
	q.jobs = append(q.jobs, job{
		id:   ulid.Make().String(),
		name: name,
		run:  run,
		done: done,
	})
	depth := len(q.jobs)
	q.cond.Signal()
	q.mu.Unlock()

	q.met.SetQueueDepth(depth)
	return done
}

// barrier submits run and blocks until the worker has executed it.
func (q *queue) barrier(name string, run func() error) error {
	return <-q.enqueue(name, run)
}

func (q *queue) loop() {
	for {
		q.mu.Lock()
		for len(q.jobs) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.jobs) == 0 {
			q.mu.Unlock()
			close(q.stopped)
			return
		}
		j := q.jobs[0]
		q.jobs = q.jobs[1:]
		depth := len(q.jobs)
		q.mu.Unlock()

		q.met.SetQueueDepth(depth)

		start := time.Now()
		err := j.run()
		q.met.ObserveOp(j.name, time.Since(start).Seconds())
		if err != nil {
			q.log.Warn("store operation failed",
				"op", j.name,
				"op_id", j.id,
				"error", err,
			)
		}
		j.done <- err
	}
}

// close drains all pending jobs, then stops the worker. Safe to call
// more than once.
func (q *queue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.stopped
		return
	}
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
	<-q.stopped
}
