package pool

import (
	"errors"
	"fmt"
	"time"
)

// RejectionPolicy decides what happens to a submission that finds every
// worker busy and the queue full.
type RejectionPolicy string

const (
	// PolicyDiscard drops the task silently. Its future never resolves.
	PolicyDiscard RejectionPolicy = "discard"
	// PolicyAbort resolves the future at once with a RejectedError.
	PolicyAbort RejectionPolicy = "abort"
	// PolicyCallerRuns runs the task on the submitting goroutine.
	PolicyCallerRuns RejectionPolicy = "caller-runs"
	// PolicyDiscardOldest drops the head of the queue and enqueues the task.
	PolicyDiscardOldest RejectionPolicy = "discard-oldest"
)

func ParseRejectionPolicy(s string) (RejectionPolicy, error) {
	switch p := RejectionPolicy(s); p {
	case PolicyDiscard, PolicyAbort, PolicyCallerRuns, PolicyDiscardOldest:
		return p, nil
	default:
		return "", fmt.Errorf("invalid rejection policy: %s", s)
	}
}

type Config struct {
	CoreSize        int
	MaxSize         int
	QueueCapacity   int
	IdleTimeout     time.Duration
	NamePrefix      string
	RejectionPolicy RejectionPolicy
}

func DefaultConfig() Config {
	return Config{
		CoreSize:        8,
		MaxSize:         10,
		QueueCapacity:   20,
		IdleTimeout:     10 * time.Second,
		NamePrefix:      "async-thread-",
		RejectionPolicy: PolicyDiscard,
	}
}

func (c Config) Validate() error {
	if c.MaxSize < 1 {
		return errors.New("max size must be at least 1")
	}
	if c.CoreSize < 0 || c.CoreSize > c.MaxSize {
		return fmt.Errorf("core size %d must be between 0 and max size %d", c.CoreSize, c.MaxSize)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("queue capacity %d must not be negative", c.QueueCapacity)
	}
	if c.IdleTimeout <= 0 {
		return errors.New("idle timeout must be positive")
	}
	if _, err := ParseRejectionPolicy(string(c.RejectionPolicy)); err != nil {
		return err
	}
	return nil
}
