package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/kubev2v/async-pool-agent/internal/metrics"
	"github.com/kubev2v/async-pool-agent/internal/models"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

const (
	LabelRequest1 = "request-1"
	LabelRequest2 = "request-2"
	LabelRequest3 = "request-3"
)

// Remote performs one value-returning call on behalf of a pool worker.
type Remote func(ctx context.Context, label, param string) (int, error)

// SimulatedRemote sleeps for latency and answers with a value in [0, 10).
func SimulatedRemote(latency time.Duration) Remote {
	return func(ctx context.Context, label, param string) (int, error) {
		v := rand.IntN(10)
		if err := simulateLatency(ctx, latency); err != nil {
			return 0, err
		}
		return v, nil
	}
}

// AsyncReturnService dispatches value-returning calls to the pool.
type AsyncReturnService struct {
	pool   *pool.Pool
	sink   metrics.Sink
	remote Remote
}

func NewAsyncReturnService(p *pool.Pool, sink metrics.Sink, remote Remote) *AsyncReturnService {
	return &AsyncReturnService{
		pool:   p,
		sink:   sink,
		remote: remote,
	}
}

// Call submits one independent call and returns its handle. Calls carry no
// ordering guarantee between each other.
func (s *AsyncReturnService) Call(label, param string) *pool.Future[int] {
	return pool.Submit(s.pool, label, func(ctx context.Context) (int, error) {
		v, err := s.remote(ctx, label, param)
		if err != nil {
			return 0, err
		}
		s.sink.Emit(ctx, models.Event{
			Level:   models.EventLevelInfo,
			Message: label + " completed",
			Fields: models.EventFields{
				Param:  param,
				Result: &v,
				Worker: pool.WorkerName(ctx),
			},
		})
		return v, nil
	})
}

func (s *AsyncReturnService) RequestURL1(param string) *pool.Future[int] {
	return s.Call(LabelRequest1, param)
}

func (s *AsyncReturnService) RequestURL2(param string) *pool.Future[int] {
	return s.Call(LabelRequest2, param)
}

func (s *AsyncReturnService) RequestURL3(param string) *pool.Future[int] {
	return s.Call(LabelRequest3, param)
}
