package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kubev2v/async-pool-agent/internal/metrics"
	"github.com/kubev2v/async-pool-agent/internal/models"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

// AsyncService dispatches fire-and-forget work.
type AsyncService struct {
	pool    *pool.Pool
	sink    metrics.Sink
	latency time.Duration
}

func NewAsyncService(p *pool.Pool, sink metrics.Sink, latency time.Duration) *AsyncService {
	return &AsyncService{
		pool:    p,
		sink:    sink,
		latency: latency,
	}
}

// FireAndForget returns immediately. The payload is logged by a pool
// worker once the simulated I/O completes. Nothing is reported back when
// the pool discards the task.
func (s *AsyncService) FireAndForget(payload string) {
	s.pool.Execute("requestMes", func(ctx context.Context) error {
		if err := simulateLatency(ctx, s.latency); err != nil {
			return err
		}
		s.sink.Emit(ctx, models.Event{
			Level:   models.EventLevelInfo,
			Message: payload,
			Fields:  models.EventFields{Worker: pool.WorkerName(ctx)},
		})
		return nil
	})
}

// simulateLatency blocks for d. An interruption is returned, never swallowed.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("simulated latency interrupted: %w", ctx.Err())
	}
}
