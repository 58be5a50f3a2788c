package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime/debug"

	"go.uber.org/zap"
)

// TaskService holds the two periodic tick handlers. Both always return
// normally so the ticker keeps firing after a failed tick.
type TaskService struct {
	async       *AsyncService
	coordinator *JoinCoordinator
}

func NewTaskService(async *AsyncService, coordinator *JoinCoordinator) *TaskService {
	return &TaskService{
		async:       async,
		coordinator: coordinator,
	}
}

// RequestData dispatches one fire-and-forget task.
func (t *TaskService) RequestData(ctx context.Context) {
	defer recoverTick("requestData")

	t.async.FireAndForget(fmt.Sprintf("requestData-index = %d", rand.IntN(100)))
}

// RequestReturnData runs one fan-out round. A failed round is logged and
// not retried.
func (t *TaskService) RequestReturnData(ctx context.Context) {
	defer recoverTick("requestReturnData")

	if _, err := t.coordinator.RunRound(ctx); err != nil {
		zap.S().Named("task_service").Warnw("round failed", "error", err)
	}
}

func recoverTick(handler string) {
	if r := recover(); r != nil {
		zap.S().Named("task_service").Errorw("tick handler panic",
			"handler", handler,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
