package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotResult is the outcome of one position of a fan-out batch.
type SlotResult struct {
	Slot      int
	Label     string
	Value     int
	Latency   time.Duration
	ErrorKind string
	Error     string
}

func (s SlotResult) Ok() bool {
	return s.ErrorKind == ""
}

// AggregateResult is produced once per fan-out round.
// Sum is only meaningful when Succeeded is true.
type AggregateResult struct {
	RoundID        uuid.UUID
	StartedAt      time.Time
	Sum            int
	Succeeded      bool
	PerTaskLatency []time.Duration
	Elapsed        time.Duration
	Slots          []SlotResult
}

// RoundSummary aggregates the recorded rounds.
type RoundSummary struct {
	Total      int
	Succeeded  int
	Failed     int
	AvgElapsed time.Duration
}
