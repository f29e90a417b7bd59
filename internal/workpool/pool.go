// Package workpool runs jobs on a fixed set of long-lived worker
// goroutines fed from one unbounded FIFO queue.
//
// Schedule never blocks: there is no backpressure, and under sustained
// overload the queue grows without limit. Pending reports its length.
package workpool

import (
	"errors"
	"sync"
)

// ErrClosed is the panic value of Schedule on a pool that was shut down.
var ErrClosed = errors.New("workpool: schedule on closed pool")

// Job is a unit of work executed exactly once by exactly one worker.
type Job func()

// message is either a job or, when stop is set, a shutdown signal for
// whichever worker dequeues it.
type message struct {
	job  Job
	stop bool
}

type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []message
	size   int
	closed bool

	wg   sync.WaitGroup
	once sync.Once
}

// New starts size workers. It panics if size is not positive.
func New(size int) *Pool {
	if size <= 0 {
		panic("workpool: size must be positive")
	}
	p := &Pool{size: size}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

// Schedule enqueues job for execution. Calling it after Shutdown has
// started is a programming error and panics with ErrClosed.
func (p *Pool) Schedule(job Job) {
	if job == nil {
		panic("workpool: nil job")
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic(ErrClosed)
	}
	p.queue = append(p.queue, message{job: job})
	p.mu.Unlock()
	p.cond.Signal()
}

// Shutdown enqueues one stop signal per worker behind every job already
// scheduled, then blocks until all workers have exited. Jobs in flight
// are never interrupted. Only the first call does anything; later calls
// return immediately.
func (p *Pool) Shutdown() {
	p.once.Do(p.shutdown)
}

func (p *Pool) shutdown() {
	p.mu.Lock()
	p.closed = true
	for i := 0; i < p.size; i++ {
		p.queue = append(p.queue, message{stop: true})
	}
	p.mu.Unlock()
	p.cond.Broadcast()

	p.wg.Wait()

	p.mu.Lock()
	p.size = 0
	p.mu.Unlock()
}

// Size is the number of workers, or 0 once Shutdown has returned.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size
}

// Pending is the number of queued messages not yet claimed by a worker.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		m := p.next()
		if m.stop {
			return
		}
		m.job()
	}
}

// next blocks until a message is available and claims it.
func (p *Pool) next() message {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) == 0 {
		p.cond.Wait()
	}
	m := p.queue[0]
	p.queue[0] = message{}
	p.queue = p.queue[1:]
	return m
}
