package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("worker pool closed")

// Task is a unit of work executed by a Pool.
type Task func(ctx context.Context)

// Pool is a fixed set of workers fed through a bounded queue. Tasks receive
// the pool context, so canceling it asks running tasks to stop.
type Pool struct {
	ctx   context.Context
	tasks chan Task

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New starts workerCount workers with room for queueSize pending tasks.
func New(ctx context.Context, workerCount, queueSize int) *Pool {
	if workerCount <= 0 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		ctx:   ctx,
		tasks: make(chan Task, queueSize),
	}
	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.work()
	}
	return p
}

// Submit queues task, blocking while the queue is full.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued and running ones.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		task(p.ctx)
	}
}
