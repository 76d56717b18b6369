package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/repository"
	"github.com/padmeamd/uroom/internal/tasks"
)

// AsynqEnqueuer 把加入请求作为 asynq 任务入队，由 WorkerServer 异步处理
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer 创建 AsynqEnqueuer 实例
func NewAsynqEnqueuer(client *asynq.Client) *AsynqEnqueuer {
	if client == nil {
		panic("asynq client cannot be nil for AsynqEnqueuer")
	}
	return &AsynqEnqueuer{client: client}
}

// RequestJoin 入队 join:request 任务。任务 ID 使用请求 ID，重复入队会被 asynq 拒绝。
func (e *AsynqEnqueuer) RequestJoin(ctx context.Context, payload tasks.JoinRequestPayload) error {
	data, err := tasks.NewJoinRequestTask(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal join request payload: %w", err)
	}
	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(tasks.TypeJoinRequest, data),
		asynq.TaskID(payload.RequestID),
		asynq.Queue("default"),
		asynq.MaxRetry(5),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue join request for room %s: %w", payload.RoomID, err)
	}
	logrus.WithFields(logrus.Fields{
		"task_id": info.ID,
		"queue":   info.Queue,
		"room_id": payload.RoomID,
	}).Debug("Join request task enqueued")
	return nil
}

// InlineEnqueuer 在没有 Redis 时直接在调用方的 goroutine 中处理加入请求
type InlineEnqueuer struct {
	handler *JoinRequestHandler
}

// NewInlineEnqueuer 创建 InlineEnqueuer 实例
func NewInlineEnqueuer(joinRepo repository.JoinRequestRepository) *InlineEnqueuer {
	return &InlineEnqueuer{handler: NewJoinRequestHandler(joinRepo)}
}

// RequestJoin 直接持久化加入请求
func (e *InlineEnqueuer) RequestJoin(ctx context.Context, payload tasks.JoinRequestPayload) error {
	logrus.WithFields(logrus.Fields{
		"room_id":      payload.RoomID,
		"applicant_id": payload.ApplicantID,
		"outcome":      payload.Outcome,
	}).Info("Processing join request inline (no task queue configured)")
	return e.handler.Handle(ctx, payload)
}
