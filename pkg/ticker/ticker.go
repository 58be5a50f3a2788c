// Package ticker fires a handler at a fixed period after an initial delay.
//
// Every tick runs the handler on its own goroutine, so a slow invocation
// never delays the next tick. Invocations of the same handler may overlap
// unless WithSkipIfRunning is set, in which case a tick that finds the
// previous invocation still in flight is skipped.
package ticker

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler func(ctx context.Context)

type Option func(*Ticker)

func WithInitialDelay(d time.Duration) Option {
	return func(t *Ticker) {
		t.initialDelay = d
	}
}

func WithPeriod(d time.Duration) Option {
	return func(t *Ticker) {
		t.period = d
	}
}

func WithSkipIfRunning(skip bool) Option {
	return func(t *Ticker) {
		t.skipIfRunning = skip
	}
}

type Stats struct {
	Fired    uint64
	Skipped  uint64
	Panicked uint64
	InFlight int64
}

type Ticker struct {
	name          string
	handler       Handler
	initialDelay  time.Duration
	period        time.Duration
	skipIfRunning bool

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	inFlight atomic.Int64
	fired    atomic.Uint64
	skipped  atomic.Uint64
	panicked atomic.Uint64
}

func New(name string, handler Handler, opts ...Option) *Ticker {
	t := &Ticker{
		name:    name,
		handler: handler,
		period:  time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins ticking in the background. It is a no-op when the ticker
// is already started or was stopped.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.started || t.stopped {
		t.mu.Unlock()
		return
	}
	t.started = true

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.wg.Add(1)
	t.mu.Unlock()

	go t.run(ctx)
}

// Stop halts ticking and waits for in-flight invocations to return.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		if t.cancel != nil {
			t.cancel()
		}
	}
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Ticker) Stats() Stats {
	return Stats{
		Fired:    t.fired.Load(),
		Skipped:  t.skipped.Load(),
		Panicked: t.panicked.Load(),
		InFlight: t.inFlight.Load(),
	}
}

func (t *Ticker) run(ctx context.Context) {
	defer t.wg.Done()

	delay := time.NewTimer(t.initialDelay)
	defer delay.Stop()

	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	}

	t.fire(ctx)

	tick := time.NewTicker(t.period)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			t.fire(ctx)
		}
	}
}

func (t *Ticker) fire(ctx context.Context) {
	if t.skipIfRunning && t.inFlight.Load() > 0 {
		t.skipped.Add(1)
		zap.S().Named("ticker").Warnw("previous invocation still in flight, tick skipped", "ticker", t.name)
		return
	}

	t.fired.Add(1)
	t.inFlight.Add(1)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer t.inFlight.Add(-1)
		t.invoke(ctx)
	}()
}

// invoke never lets a handler panic escape, so one bad tick cannot stop
// future ones.
func (t *Ticker) invoke(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			t.panicked.Add(1)
			correlationID := uuid.NewString()
			zap.S().Named("ticker").Errorw("tick handler panic",
				"ticker", t.name,
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	t.handler(ctx)
}
