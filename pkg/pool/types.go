package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kubev2v/async-pool-agent/internal/models"
	errs "github.com/kubev2v/async-pool-agent/pkg/errors"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future is the submitter's handle on a task. It resolves at most once.
// A future whose task was discarded by the pool never resolves.
type Future[T any] struct {
	id        uuid.UUID
	name      string
	done      chan struct{}
	once      sync.Once
	result    Result[T]
	cancel    context.CancelFunc
	discarded atomic.Bool

	mu    sync.Mutex
	state models.TaskState
}

func newFuture[T any](name string, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		id:     uuid.New(),
		name:   name,
		done:   make(chan struct{}),
		cancel: cancel,
		state:  models.TaskStatePending,
	}
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

func (f *Future[T]) Name() string {
	return f.name
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolved value and false when the future is still
// unresolved.
func (f *Future[T]) Result() (Result[T], bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return Result[T]{}, false
	}
}

// Await blocks until the future resolves, timeout elapses or ctx is done.
// A zero timeout waits without a deadline.
func (f *Future[T]) Await(ctx context.Context, timeout time.Duration) (T, error) {
	var zero T

	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	select {
	case <-f.done:
		return f.result.Data, f.result.Err
	case <-expired:
		if r, ok := f.Result(); ok {
			return r.Data, r.Err
		}
		return zero, errs.NewTimeoutError(f.name, timeout)
	case <-ctx.Done():
		return zero, errs.NewInterruptedWaitError(f.name, ctx.Err())
	}
}

// Stop cancels the task context. Work that ignores its context keeps running.
func (f *Future[T]) Stop() {
	f.cancel()
}

func (f *Future[T]) State() models.TaskState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Discarded reports whether the pool dropped the task under the discard
// policies.
func (f *Future[T]) Discarded() bool {
	return f.discarded.Load()
}

// setState leaves terminal states untouched.
func (f *Future[T]) setState(s models.TaskState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Terminal() {
		return
	}
	f.state = s
}

func (f *Future[T]) resolve(r Result[T], s models.TaskState) bool {
	resolved := false
	f.once.Do(func() {
		f.result = r
		f.setState(s)
		close(f.done)
		resolved = true
	})
	return resolved
}

func (f *Future[T]) markDiscarded() {
	f.discarded.Store(true)
	f.setState(models.TaskStateRejected)
	f.cancel()
}
