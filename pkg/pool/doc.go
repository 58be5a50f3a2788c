// Package pool implements a bounded worker pool for executing async work with futures.
//
// The pool keeps CoreSize workers alive, buffers up to QueueCapacity tasks and
// grows to MaxSize workers only once the queue is full. Work is submitted via
// Submit and returns a Future that resolves exactly once, or never when the
// task is discarded by the rejection policy.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                               Pool                                  │
//	│                                                                     │
//	│  ┌──────────────┐   ┌──────────────┐        ┌──────────────┐        │
//	│  │ core worker  │...│ core worker  │        │ burst worker │ ...    │
//	│  │ (CoreSize)   │   │              │        │ (≤ MaxSize)  │        │
//	│  └──────▲───────┘   └──────▲───────┘        └──────▲───────┘        │
//	│         │                  │                       │                │
//	│         └──────────────────┼───────────────────────┘                │
//	│                            │                                        │
//	│  ┌─────────────────────────┴───────────────────────────────┐        │
//	│  │            Work Queue (capacity QueueCapacity)          │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                            ▲                                        │
//	│                            │                                        │
//	│                     Submit(fn) / Execute(fn)                        │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Submission
//
// All decisions are taken under the pool mutex:
//
//  1. workers < CoreSize      → start a worker with the task as first task
//  2. queue has room          → enqueue
//  3. workers < MaxSize       → start a burst worker with the task
//  4. otherwise               → RejectionPolicy
//
// A QueueCapacity of zero turns the queue into a hand-off: a task is only
// enqueued when an idle worker is already waiting for it.
//
// # Rejection Policies
//
//	┌────────────────┬──────────────────────────────────────────────────┐
//	│ Policy         │ Behavior                                         │
//	├────────────────┼──────────────────────────────────────────────────┤
//	│ discard        │ drop silently, future never resolves (default)   │
//	│ abort          │ future resolves with RejectedError               │
//	│ caller-runs    │ run on the submitting goroutine                  │
//	│ discard-oldest │ drop the queue head, enqueue the new task        │
//	└────────────────┴──────────────────────────────────────────────────┘
//
// Discarded futures report Discarded() == true and state "rejected".
//
// # Worker Lifecycle
//
//	┌──────────┐   task    ┌──────────┐
//	│ Waiting  │ ────────► │ Running  │
//	│ on queue │ ◄──────── │          │
//	└────┬─────┘   done    └──────────┘
//	     │
//	     │ IdleTimeout without work and workers > CoreSize
//	     ▼
//	┌──────────┐
//	│ Retired  │
//	└──────────┘
//
// Workers recover from panics in work functions; the future receives an
// ExecutionError and the worker keeps serving the queue.
//
// # Cancellation
//
// Each task gets a context derived from the pool context:
//   - future.Stop() → cancels that task's context
//   - pool.Close()  → cancels every task context
//
// Cancellation is cooperative. Work that ignores ctx.Done() runs to completion.
//
// # Shutdown
//
// Shutdown(ctx) stops intake and waits for the queue to drain.
// Close() stops intake, cancels running work and fails queued tasks with
// PoolClosedError. Both are idempotent; submissions afterwards resolve with
// PoolClosedError.
//
// # Usage Example
//
//	p, err := pool.New(pool.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	future := pool.Submit(p, "lookup", func(ctx context.Context) (int, error) {
//	    return 42, nil
//	})
//
//	v, err := future.Await(ctx, 5*time.Second)
package pool
