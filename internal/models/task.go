package models

// TaskState represents the lifecycle state of a submitted task.
type TaskState string

const (
	// TaskStatePending - accepted by the pool, waiting for a worker
	TaskStatePending TaskState = "pending"
	// TaskStateRunning - a worker is executing the task
	TaskStateRunning TaskState = "running"
	// TaskStateCompleted - the task returned a value
	TaskStateCompleted TaskState = "completed"
	// TaskStateFailed - the task returned an error or panicked
	TaskStateFailed TaskState = "failed"
	// TaskStateRejected - the pool refused the task
	TaskStateRejected TaskState = "rejected"
)

// Terminal reports whether no further transition can happen.
func (t TaskState) Terminal() bool {
	switch t {
	case TaskStateCompleted, TaskStateFailed, TaskStateRejected:
		return true
	default:
		return false
	}
}
