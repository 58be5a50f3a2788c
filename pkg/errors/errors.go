package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind names the failure class of a task or a fan-out slot.
type ErrorKind string

const (
	KindRejected        ErrorKind = "rejected"
	KindExecution       ErrorKind = "execution"
	KindTimeout         ErrorKind = "timeout"
	KindInterruptedWait ErrorKind = "interrupted_wait"
	KindPoolClosed      ErrorKind = "pool_closed"
)

type RejectedError struct {
	task   string
	policy string
}

func NewRejectedError(task, policy string) *RejectedError {
	return &RejectedError{task: task, policy: policy}
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("task %q rejected by pool (policy %s)", e.task, e.policy)
}

type ExecutionError struct {
	task string
	err  error
}

func NewExecutionError(task string, err error) *ExecutionError {
	return &ExecutionError{task: task, err: err}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("task %q failed: %v", e.task, e.err)
}

func (e *ExecutionError) Unwrap() error {
	return e.err
}

type TimeoutError struct {
	task    string
	timeout time.Duration
}

func NewTimeoutError(task string, timeout time.Duration) *TimeoutError {
	return &TimeoutError{task: task, timeout: timeout}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("task %q not resolved within %s", e.task, e.timeout)
}

type InterruptedWaitError struct {
	task string
	err  error
}

func NewInterruptedWaitError(task string, err error) *InterruptedWaitError {
	return &InterruptedWaitError{task: task, err: err}
}

func (e *InterruptedWaitError) Error() string {
	return fmt.Sprintf("wait for task %q interrupted: %v", e.task, e.err)
}

func (e *InterruptedWaitError) Unwrap() error {
	return e.err
}

type PoolClosedError struct{}

func NewPoolClosedError() *PoolClosedError {
	return &PoolClosedError{}
}

func (e *PoolClosedError) Error() string {
	return "pool is closed"
}

type ResourceNotFoundError struct {
	resource string
	id       string
}

func NewRoundNotFoundError(id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{resource: "round", id: id}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.resource, e.id)
}

type SlotError struct {
	Slot  int
	Label string
	err   error
}

func NewSlotError(slot int, label string, err error) *SlotError {
	return &SlotError{Slot: slot, Label: label, err: err}
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d (%s): %v", e.Slot, e.Label, e.err)
}

func (e *SlotError) Unwrap() error {
	return e.err
}

func IsRejectedError(err error) bool {
	var e *RejectedError
	return errors.As(err, &e)
}

func IsExecutionError(err error) bool {
	var e *ExecutionError
	return errors.As(err, &e)
}

func IsTimeoutError(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

func IsInterruptedWaitError(err error) bool {
	var e *InterruptedWaitError
	return errors.As(err, &e)
}

func IsPoolClosedError(err error) bool {
	var e *PoolClosedError
	return errors.As(err, &e)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// Kind classifies err. Unknown errors are reported as execution errors.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case IsRejectedError(err):
		return KindRejected
	case IsTimeoutError(err):
		return KindTimeout
	case IsInterruptedWaitError(err):
		return KindInterruptedWait
	case IsPoolClosedError(err):
		return KindPoolClosed
	default:
		return KindExecution
	}
}
