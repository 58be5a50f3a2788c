package metrics

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/kubev2v/async-pool-agent/internal/models"
)

// Sink receives task completion events and round summaries.
type Sink interface {
	Emit(ctx context.Context, e models.Event)
	RecordRound(ctx context.Context, r *models.AggregateResult)
}

type RoundRecorder interface {
	Save(ctx context.Context, r *models.AggregateResult) error
}

// LogSink writes events as structured zap entries.
type LogSink struct {
	log *zap.SugaredLogger
}

func NewLogSink() *LogSink {
	return &LogSink{log: zap.S().Named("metrics")}
}

func (s *LogSink) Emit(_ context.Context, e models.Event) {
	kv := fields(e.Fields)
	switch e.Level {
	case models.EventLevelWarn:
		s.log.Warnw(e.Message, kv...)
	default:
		s.log.Infow(e.Message, kv...)
	}
}

func (s *LogSink) RecordRound(_ context.Context, r *models.AggregateResult) {
	s.log.Debugw("round recorded",
		"round", r.RoundID.String(),
		"succeeded", r.Succeeded,
		"slots", len(r.Slots),
		"elapsedSeconds", r.Elapsed.Seconds(),
	)
}

func fields(f models.EventFields) []any {
	var kv []any
	if f.RoundID != "" {
		kv = append(kv, "round", f.RoundID)
	}
	if f.Worker != "" {
		kv = append(kv, "worker", f.Worker)
	}
	if f.Param != "" {
		kv = append(kv, "param", f.Param)
	}
	if f.Result != nil {
		kv = append(kv, "result", *f.Result)
	}
	if f.ElapsedSeconds != nil {
		kv = append(kv, "elapsedSeconds", *f.ElapsedSeconds)
	}
	return kv
}

const (
	defaultSaveTries    uint = 3
	defaultSaveInterval      = 50 * time.Millisecond
)

// StoreSink keeps round summaries in the round history. A failed save is
// retried with exponential backoff and then logged.
type StoreSink struct {
	recorder RoundRecorder
	tries    uint
	interval time.Duration
}

func NewStoreSink(recorder RoundRecorder) *StoreSink {
	return &StoreSink{recorder: recorder, tries: defaultSaveTries, interval: defaultSaveInterval}
}

// WithRetry overrides the number of save attempts and the first retry interval.
func (s *StoreSink) WithRetry(tries uint, interval time.Duration) *StoreSink {
	s.tries = max(tries, 1)
	s.interval = interval
	return s
}

func (s *StoreSink) Emit(context.Context, models.Event) {}

func (s *StoreSink) RecordRound(ctx context.Context, r *models.AggregateResult) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.interval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, s.recorder.Save(ctx, r)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.tries))
	if err != nil {
		zap.S().Named("metrics").Errorw("failed to record round", "round", r.RoundID.String(), "tries", s.tries, "error", err)
	}
}

type multiSink []Sink

// Multi fans every call out to sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Emit(ctx context.Context, e models.Event) {
	for _, s := range m {
		s.Emit(ctx, e)
	}
}

func (m multiSink) RecordRound(ctx context.Context, r *models.AggregateResult) {
	for _, s := range m {
		s.RecordRound(ctx, r)
	}
}
