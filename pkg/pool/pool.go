package pool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/async-pool-agent/internal/models"
	errs "github.com/kubev2v/async-pool-agent/pkg/errors"
)

type workerNameKey struct{}

// WorkerName returns the name of the worker executing the task owning ctx.
func WorkerName(ctx context.Context) string {
	name, _ := ctx.Value(workerNameKey{}).(string)
	return name
}

type task struct {
	name    string
	ctx     context.Context
	cancel  context.CancelFunc
	exec    func(ctx context.Context) error
	fail    func(err error, state models.TaskState)
	discard func()
}

// Stats is a point-in-time view of the pool. Submitted counts tasks the pool
// accepted, including those run on the caller; Rejected counts tasks refused
// or discarded, including submissions after shutdown. A queued task dropped
// under discard-oldest is counted in both.
type Stats struct {
	PoolSize        int
	LargestPoolSize int
	Active          int
	Queued          int
	QueueCapacity   int
	Submitted       uint64
	Completed       uint64
	Failed          uint64
	Rejected        uint64
}

type Pool struct {
	cfg   Config
	queue chan *task

	mu         sync.Mutex
	workers    int
	largest    int
	pending    int
	nextWorker int
	shutdown   bool
	idle       chan struct{}

	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	closeOnce  sync.Once

	active    atomic.Int64
	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	rejected  atomic.Uint64
}

func New(cfg Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pool configuration: %w", err)
	}

	idle := make(chan struct{})
	close(idle)

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		cfg:        cfg,
		queue:      make(chan *task, cfg.QueueCapacity),
		idle:       idle,
		mainCtx:    ctx,
		mainCancel: cancel,
	}, nil
}

// Submit hands w to the pool and returns its future immediately.
func Submit[T any](p *Pool, name string, w Work[T]) *Future[T] {
	ctx, cancel := context.WithCancel(p.mainCtx)
	f := newFuture[T](name, cancel)

	p.submit(&task{
		name:   name,
		ctx:    ctx,
		cancel: cancel,
		exec: func(ctx context.Context) error {
			f.setState(models.TaskStateRunning)
			v, err := call(ctx, w)
			if err != nil {
				f.resolve(Result[T]{Err: errs.NewExecutionError(name, err)}, models.TaskStateFailed)
				return err
			}
			f.resolve(Result[T]{Data: v}, models.TaskStateCompleted)
			return nil
		},
		fail: func(err error, state models.TaskState) {
			f.resolve(Result[T]{Err: err}, state)
		},
		discard: f.markDiscarded,
	})

	return f
}

// Execute submits fn without a handle. Failures are only logged.
func (p *Pool) Execute(name string, fn func(ctx context.Context) error) {
	Submit[struct{}](p, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

func call[T any](ctx context.Context, w Work[T]) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("worker panicked: %v", rec)
		}
	}()
	return w(ctx)
}

func (p *Pool) submit(t *task) {
	p.mu.Lock()

	if p.shutdown {
		p.mu.Unlock()
		p.rejected.Add(1)
		t.cancel()
		t.fail(errs.NewPoolClosedError(), models.TaskStateRejected)
		return
	}

	if p.workers < p.cfg.CoreSize {
		p.startWorkerLocked(t)
		p.mu.Unlock()
		p.submitted.Add(1)
		return
	}

	if p.enqueueLocked(t) {
		p.mu.Unlock()
		p.submitted.Add(1)
		return
	}

	if p.workers < p.cfg.MaxSize {
		p.startWorkerLocked(t)
		p.mu.Unlock()
		p.submitted.Add(1)
		return
	}

	p.rejectLocked(t)
}

// rejectLocked is entered with p.mu held and releases it.
func (p *Pool) rejectLocked(t *task) {
	log := zap.S().Named("pool")

	switch p.cfg.RejectionPolicy {
	case PolicyAbort:
		p.mu.Unlock()
		p.rejected.Add(1)
		t.cancel()
		t.fail(errs.NewRejectedError(t.name, string(PolicyAbort)), models.TaskStateRejected)
		log.Debugw("task rejected", "task", t.name, "policy", PolicyAbort)
	case PolicyCallerRuns:
		p.markPendingLocked()
		p.mu.Unlock()
		p.submitted.Add(1)
		log.Debugw("pool saturated, running task on caller", "task", t.name)
		p.runTask("caller", t)
	case PolicyDiscardOldest:
		select {
		case oldest := <-p.queue:
			p.releasePendingLocked()
			p.rejected.Add(1)
			oldest.discard()
			log.Debugw("oldest queued task discarded", "task", oldest.name)
		default:
		}
		if p.enqueueLocked(t) {
			p.mu.Unlock()
			p.submitted.Add(1)
			return
		}
		p.mu.Unlock()
		p.rejected.Add(1)
		t.discard()
		log.Debugw("task discarded", "task", t.name, "policy", PolicyDiscardOldest)
	default:
		p.mu.Unlock()
		p.rejected.Add(1)
		t.discard()
		log.Debugw("task discarded", "task", t.name, "policy", PolicyDiscard)
	}
}

func (p *Pool) enqueueLocked(t *task) bool {
	select {
	case p.queue <- t:
	default:
		return false
	}
	p.markPendingLocked()
	// the queue must never be left without a worker to drain it
	if p.workers == 0 {
		p.startWorkerLocked(nil)
	}
	return true
}

func (p *Pool) markPendingLocked() {
	if p.pending == 0 {
		p.idle = make(chan struct{})
	}
	p.pending++
}

func (p *Pool) releasePendingLocked() {
	p.pending--
	if p.pending == 0 {
		close(p.idle)
	}
}

func (p *Pool) finishPending() {
	p.mu.Lock()
	p.releasePendingLocked()
	p.mu.Unlock()
}

func (p *Pool) startWorkerLocked(first *task) {
	if first != nil {
		p.markPendingLocked()
	}
	p.workers++
	if p.workers > p.largest {
		p.largest = p.workers
	}
	p.nextWorker++
	name := fmt.Sprintf("%s%d", p.cfg.NamePrefix, p.nextWorker)

	p.wg.Add(1)
	go p.worker(name, first)
}

func (p *Pool) worker(name string, first *task) {
	defer p.wg.Done()

	log := zap.S().Named("pool")
	log.Debugw("worker started", "worker", name)

	if first != nil {
		p.runTask(name, first)
	}

	idle := time.NewTimer(p.cfg.IdleTimeout)
	defer idle.Stop()

	for {
		select {
		case t, ok := <-p.queue:
			if !ok {
				p.mu.Lock()
				p.workers--
				p.mu.Unlock()
				log.Debugw("worker stopped", "worker", name)
				return
			}
			p.runTask(name, t)
		case <-idle.C:
			if p.tryRetire() {
				log.Debugw("idle worker retired", "worker", name)
				return
			}
		}
		idle.Reset(p.cfg.IdleTimeout)
	}
}

// tryRetire removes the calling worker when the pool is above its core
// size, unless it is the last worker and work is still queued.
func (p *Pool) tryRetire() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.workers <= p.cfg.CoreSize {
		return false
	}
	if p.workers == 1 && len(p.queue) > 0 {
		return false
	}
	p.workers--
	return true
}

func (p *Pool) runTask(worker string, t *task) {
	defer p.finishPending()
	defer t.cancel()

	if p.mainCtx.Err() != nil {
		p.failed.Add(1)
		t.fail(errs.NewPoolClosedError(), models.TaskStateFailed)
		return
	}

	p.active.Add(1)
	err := t.exec(context.WithValue(t.ctx, workerNameKey{}, worker))
	p.active.Add(-1)

	if err != nil {
		p.failed.Add(1)
		zap.S().Named("pool").Warnw("task failed", "task", t.name, "worker", worker, "error", err)
		return
	}
	p.completed.Add(1)
}

// IdleC returns a channel that is closed once the pool has neither queued
// nor running tasks.
func (p *Pool) IdleC() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle
}

func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		PoolSize:        p.workers,
		LargestPoolSize: p.largest,
		Active:          int(p.active.Load()),
		Queued:          len(p.queue),
		QueueCapacity:   p.cfg.QueueCapacity,
		Submitted:       p.submitted.Load(),
		Completed:       p.completed.Load(),
		Failed:          p.failed.Load(),
		Rejected:        p.rejected.Load(),
	}
}

func (p *Pool) Config() Config {
	return p.cfg
}

// Shutdown stops accepting work and waits for queued and running tasks to
// finish, or for ctx to be done.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopIntake()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work, cancels running tasks, fails queued tasks
// with PoolClosedError and waits for every worker to exit.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mainCancel()
		p.stopIntake()
	})
	p.wg.Wait()
}

func (p *Pool) stopIntake() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown {
		return
	}
	p.shutdown = true
	close(p.queue)
}
