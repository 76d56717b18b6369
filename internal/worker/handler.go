package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
	"github.com/padmeamd/uroom/internal/tasks"
)

// 与 discovery.OutcomeAutoJoined 保持一致，避免 worker 依赖 discovery 包
const outcomeAutoJoined = "auto_joined"

// JoinRequestHandler 处理加入房间请求任务，把请求持久化为 JoinRequest
type JoinRequestHandler struct {
	joinRepo repository.JoinRequestRepository
	now      func() time.Time
}

// NewJoinRequestHandler 创建 Handler 实例
func NewJoinRequestHandler(joinRepo repository.JoinRequestRepository) *JoinRequestHandler {
	if joinRepo == nil {
		panic("JoinRequestRepository cannot be nil for JoinRequestHandler")
	}
	return &JoinRequestHandler{joinRepo: joinRepo, now: time.Now}
}

// ProcessTask 实现 asynq.Handler 接口
func (h *JoinRequestHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	taskID := ""
	if rw := t.ResultWriter(); rw != nil {
		taskID = rw.TaskID()
	}
	currentRetry, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)

	logCtx := logrus.WithFields(logrus.Fields{
		"task_id":   taskID,
		"task_type": t.Type(),
		"retry":     currentRetry,
		"max_retry": maxRetry,
	})
	logCtx.Info("Processing join request task...")

	payload, err := tasks.ParseJoinRequestTask(t.Payload())
	if err != nil {
		logCtx.WithError(err).Error("Failed to unmarshal task payload")
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.RoomID == "" || payload.RequestID == "" {
		logCtx.Error("Join request payload is missing room or request id")
		return fmt.Errorf("incomplete join request payload: %w", asynq.SkipRetry)
	}
	logCtx = logCtx.WithFields(logrus.Fields{
		"room_id":      payload.RoomID,
		"applicant_id": payload.ApplicantID,
		"outcome":      payload.Outcome,
	})

	if err := h.Handle(ctx, payload); err != nil {
		logCtx.WithError(err).Error("Failed to persist join request")
		return err
	}
	logCtx.Info("Join request task processed successfully")
	return nil
}

// Handle 把 payload 写成 JoinRequest。重复写入（任务重试）视为成功。
func (h *JoinRequestHandler) Handle(ctx context.Context, payload tasks.JoinRequestPayload) error {
	status := domain.JoinStatusPending
	if payload.Outcome == outcomeAutoJoined {
		status = domain.JoinStatusAccepted
	}
	req := &domain.JoinRequest{
		ID:          payload.RequestID,
		RoomID:      payload.RoomID,
		ApplicantID: payload.ApplicantID,
		Outcome:     payload.Outcome,
		Status:      status,
		Answers:     payload.Answers,
		CreatedAt:   h.now().UTC(),
	}
	if err := h.joinRepo.Save(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil
		}
		return fmt.Errorf("failed to save join request %s: %w", req.ID, err)
	}
	return nil
}
