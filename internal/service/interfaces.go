package service

import (
	"context"

	"github.com/padmeamd/uroom/internal/tasks"
)

// Publisher 把事件推送到实时频道，由 hub.Hub 实现。
type Publisher interface {
	Publish(channel, eventType string, data interface{}) error
}

// JoinRequester 把加入请求交给后台处理（asynq 队列或进程内直接写入）。
type JoinRequester interface {
	RequestJoin(ctx context.Context, payload tasks.JoinRequestPayload) error
}

// 推送事件类型
const (
	EventNotification = "notification"
	EventSession      = "session"
	EventMessage      = "message"
)
