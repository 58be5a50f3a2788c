package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/async-pool-agent/internal/metrics"
	"github.com/kubev2v/async-pool-agent/internal/models"
	errs "github.com/kubev2v/async-pool-agent/pkg/errors"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

type Caller interface {
	Call(label, param string) *pool.Future[int]
}

type IdleNotifier interface {
	IdleC() <-chan struct{}
}

// JoinCoordinator fans a fixed set of calls out to the pool and joins them
// with a per-slot timeout.
type JoinCoordinator struct {
	caller       Caller
	idle         IdleNotifier
	sink         metrics.Sink
	labels       []string
	taskTimeout  time.Duration
	softDeadline time.Duration
}

func NewJoinCoordinator(caller Caller, idle IdleNotifier, sink metrics.Sink, taskTimeout, softDeadline time.Duration) *JoinCoordinator {
	return &JoinCoordinator{
		caller:       caller,
		idle:         idle,
		sink:         sink,
		labels:       []string{LabelRequest1, LabelRequest2, LabelRequest3},
		taskTimeout:  taskTimeout,
		softDeadline: softDeadline,
	}
}

// WithLabels replaces the fanned-out calls.
func (c *JoinCoordinator) WithLabels(labels ...string) *JoinCoordinator {
	c.labels = labels
	return c
}

// RunRound submits every call, joins them and returns the aggregate. When
// any slot fails the result carries no sum and the returned error joins the
// slot errors. The aggregate is returned in both cases.
func (c *JoinCoordinator) RunRound(ctx context.Context) (*models.AggregateResult, error) {
	start := time.Now()
	roundID := uuid.New()
	log := zap.S().Named("coordinator").With("round", roundID.String())

	batch := make([]*pool.Future[int], len(c.labels))
	submitted := make([]time.Time, len(c.labels))
	for i, label := range c.labels {
		submitted[i] = time.Now()
		batch[i] = c.caller.Call(label, fmt.Sprintf("index = %d", i+1))
	}

	deadline := start.Add(c.taskTimeout)
	if n := len(submitted); n > 0 {
		deadline = submitted[n-1].Add(c.taskTimeout)
	}
	c.waitSettled(ctx, log, batch, deadline)

	slots, slotErrs := c.resolve(ctx, batch, submitted)

	result := &models.AggregateResult{
		RoundID:   roundID,
		StartedAt: start,
		Slots:     slots,
	}
	sum := 0
	for _, s := range slots {
		result.PerTaskLatency = append(result.PerTaskLatency, s.Latency)
		if !s.Ok() {
			log.Errorw("round slot failed", "slot", s.Slot, "label", s.Label, "kind", s.ErrorKind, "error", s.Error)
			continue
		}
		sum += s.Value
	}

	if len(slotErrs) == 0 {
		result.Sum = sum
		result.Succeeded = true
		c.sink.Emit(ctx, models.Event{
			Level:   models.EventLevelInfo,
			Message: "round completed",
			Fields:  models.EventFields{RoundID: roundID.String(), Result: &sum},
		})
	}

	result.Elapsed = time.Since(start)
	elapsed := result.Elapsed.Seconds()
	c.sink.Emit(ctx, models.Event{
		Level:   models.EventLevelWarn,
		Message: "round elapsed",
		Fields:  models.EventFields{RoundID: roundID.String(), ElapsedSeconds: &elapsed},
	})
	c.sink.RecordRound(context.WithoutCancel(ctx), result)

	return result, errors.Join(slotErrs...)
}

// waitSettled returns once every handle resolved, the pool went idle, the
// last slot deadline passed or ctx ended. Crossing the soft deadline is only
// logged.
func (c *JoinCoordinator) waitSettled(ctx context.Context, log *zap.SugaredLogger, batch []*pool.Future[int], deadline time.Time) {
	stop := make(chan struct{})
	defer close(stop)

	allDone := make(chan struct{})
	go func() {
		for _, f := range batch {
			if f.Discarded() {
				continue
			}
			select {
			case <-f.Done():
			case <-stop:
				return
			}
		}
		close(allDone)
	}()

	hard := time.NewTimer(time.Until(deadline))
	defer hard.Stop()

	var softC <-chan time.Time
	if c.softDeadline > 0 {
		soft := time.NewTimer(c.softDeadline)
		defer soft.Stop()
		softC = soft.C
	}

	start := time.Now()
	idle := c.idle.IdleC()
	for {
		select {
		case <-allDone:
			return
		case <-idle:
			return
		case <-hard.C:
			return
		case <-ctx.Done():
			return
		case <-softC:
			log.Warnw("round still waiting past soft deadline", "softDeadline", c.softDeadline, "waited", time.Since(start))
			softC = nil
		}
	}
}

func (c *JoinCoordinator) resolve(ctx context.Context, batch []*pool.Future[int], submitted []time.Time) ([]models.SlotResult, []error) {
	slots := make([]models.SlotResult, len(batch))
	slotErrs := make([]error, len(batch))

	var wg sync.WaitGroup
	for i, f := range batch {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[i], slotErrs[i] = c.resolveSlot(ctx, i+1, c.labels[i], f, submitted[i])
		}()
	}
	wg.Wait()

	var failed []error
	for _, err := range slotErrs {
		if err != nil {
			failed = append(failed, err)
		}
	}
	return slots, failed
}

// resolveSlot waits for f until its own deadline. A miss only affects this
// slot; the task context is cancelled on a best-effort basis.
func (c *JoinCoordinator) resolveSlot(ctx context.Context, slot int, label string, f *pool.Future[int], submitted time.Time) (models.SlotResult, error) {
	s := models.SlotResult{Slot: slot, Label: label}

	var (
		v   int
		err error
	)
	if f.Discarded() {
		err = errs.NewRejectedError(label, string(pool.PolicyDiscard))
	} else {
		timer := time.NewTimer(max(time.Until(submitted.Add(c.taskTimeout)), 0))
		defer timer.Stop()

		select {
		case <-f.Done():
		case <-timer.C:
		case <-ctx.Done():
		}

		if r, ok := f.Result(); ok {
			v, err = r.Data, r.Err
		} else if f.Discarded() {
			err = errs.NewRejectedError(label, string(pool.PolicyDiscard))
		} else if ctx.Err() != nil {
			err = errs.NewInterruptedWaitError(label, ctx.Err())
		} else {
			err = errs.NewTimeoutError(label, c.taskTimeout)
			f.Stop()
		}
	}

	s.Latency = time.Since(submitted)
	if err != nil {
		s.ErrorKind = string(errs.Kind(err))
		s.Error = err.Error()
		return s, errs.NewSlotError(slot, label, err)
	}
	s.Value = v
	return s, nil
}
