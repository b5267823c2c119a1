// Package workerpool runs submitted tasks on a bounded set of goroutines.
package workerpool

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
)

// Task is a unit of work submitted to the pool.
type Task func()

// Pool is a bounded goroutine pool with a fixed-size task queue.
type Pool struct {
	maxWorkers int
	queue      chan Task
	wg         sync.WaitGroup
	workers    sync.WaitGroup
	mu         sync.RWMutex
	accepting  atomic.Bool
	closeOnce  sync.Once
	logger     log.Logger
}

// New creates a pool with maxWorkers goroutines and a task queue of queueSize.
// Values below 1 are raised to 1. A nil logger discards pool logs.
func New(maxWorkers, queueSize int, logger log.Logger) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if logger == nil {
		logger = log.Noop
	}

	p := &Pool{
		maxWorkers: maxWorkers,
		queue:      make(chan Task, queueSize),
		logger:     logger.WithValues(log.Kv{"svc": "workerpool"}),
	}
	p.accepting.Store(true)

	p.workers.Add(maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		go p.worker()
	}

	p.logger.Debugf("worker pool started (workers=%d, queue=%d)", maxWorkers, queueSize)
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.maxWorkers
}

// Submit enqueues a task. Returns false if the pool is stopped or the queue is full.
func (p *Pool) Submit(task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.accepting.Load() {
		return false
	}

	// wg.Add happens before the enqueue so Drain never misses the task.
	p.wg.Add(1)
	select {
	case p.queue <- task:
		return true
	default:
		p.wg.Done()
		p.logger.Warningf(messages.WorkerPoolTaskRejected)
		return false
	}
}

// StopAccepting prevents new tasks from being submitted.
func (p *Pool) StopAccepting() {
	p.mu.Lock()
	p.accepting.Store(false)
	p.mu.Unlock()
}

// Drain stops accepting tasks and waits for queued and in-flight tasks to
// complete, or for ctx to end. It reports whether every task finished.
// Worker goroutines exit once the queue is empty.
func (p *Pool) Drain(ctx context.Context) bool {
	p.StopAccepting()
	p.closeOnce.Do(func() {
		close(p.queue)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		p.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Debugf("worker pool drained")
		return true
	case <-ctx.Done():
		p.logger.Warningf("worker pool drain interrupted: %v", ctx.Err())
		return false
	}
}

// Close drains the pool without a deadline. It is the join barrier for
// every task submitted before it.
func (p *Pool) Close() {
	p.Drain(context.Background())
}

func (p *Pool) worker() {
	defer p.workers.Done()
	for task := range p.queue {
		p.runTask(task)
	}
}

// runTask executes a single task with panic recovery. wg.Done matches the
// wg.Add in Submit.
func (p *Pool) runTask(task Task) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorf("task panicked: %v\n%s", r, debug.Stack())
		}
	}()
	task()
}
