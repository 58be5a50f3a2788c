package handlers

import (
	"time"

	"github.com/kubev2v/async-pool-agent/internal/models"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

type PoolStatsResponse struct {
	PoolSize        int    `json:"poolSize"`
	LargestPoolSize int    `json:"largestPoolSize"`
	Active          int    `json:"active"`
	Queued          int    `json:"queued"`
	QueueCapacity   int    `json:"queueCapacity"`
	Submitted       uint64 `json:"submitted"`
	Completed       uint64 `json:"completed"`
	Failed          uint64 `json:"failed"`
	Rejected        uint64 `json:"rejected"`
}

type SlotResponse struct {
	Slot      int    `json:"slot"`
	Label     string `json:"label"`
	Value     *int   `json:"value,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
	ErrorKind string `json:"errorKind,omitempty"`
	Error     string `json:"error,omitempty"`
}

type RoundResponse struct {
	ID        string         `json:"id"`
	StartedAt time.Time      `json:"startedAt"`
	Succeeded bool           `json:"succeeded"`
	Sum       *int           `json:"sum,omitempty"`
	ElapsedMs int64          `json:"elapsedMs"`
	Slots     []SlotResponse `json:"slots"`
	Error     string         `json:"error,omitempty"`
}

type RoundListResponse struct {
	Page      int             `json:"page"`
	PageCount int             `json:"pageCount"`
	Total     int             `json:"total"`
	Rounds    []RoundResponse `json:"rounds"`
}

type RoundSummaryResponse struct {
	Total       int     `json:"total"`
	Succeeded   int     `json:"succeeded"`
	Failed      int     `json:"failed"`
	AvgElapsedS float64 `json:"avgElapsedSeconds"`
}

func NewPoolStatsFromModel(s pool.Stats) PoolStatsResponse {
	return PoolStatsResponse{
		PoolSize:        s.PoolSize,
		LargestPoolSize: s.LargestPoolSize,
		Active:          s.Active,
		Queued:          s.Queued,
		QueueCapacity:   s.QueueCapacity,
		Submitted:       s.Submitted,
		Completed:       s.Completed,
		Failed:          s.Failed,
		Rejected:        s.Rejected,
	}
}

func NewRoundFromModel(r models.AggregateResult) RoundResponse {
	resp := RoundResponse{
		ID:        r.RoundID.String(),
		StartedAt: r.StartedAt,
		Succeeded: r.Succeeded,
		ElapsedMs: r.Elapsed.Milliseconds(),
		Slots:     make([]SlotResponse, 0, len(r.Slots)),
	}
	if r.Succeeded {
		sum := r.Sum
		resp.Sum = &sum
	}
	for _, s := range r.Slots {
		slot := SlotResponse{
			Slot:      s.Slot,
			Label:     s.Label,
			LatencyMs: s.Latency.Milliseconds(),
			ErrorKind: s.ErrorKind,
			Error:     s.Error,
		}
		if s.Ok() {
			v := s.Value
			slot.Value = &v
		}
		resp.Slots = append(resp.Slots, slot)
	}
	return resp
}

func NewRoundSummaryFromModel(s models.RoundSummary) RoundSummaryResponse {
	return RoundSummaryResponse{
		Total:       s.Total,
		Succeeded:   s.Succeeded,
		Failed:      s.Failed,
		AvgElapsedS: s.AvgElapsed.Seconds(),
	}
}
