package repository

import (
	"context"

	"github.com/padmeamd/uroom/internal/domain"
)

// MessageRepository 存储房间群聊消息。
type MessageRepository interface {
	// ListByRoom 按时间顺序返回房间的消息。
	ListByRoom(ctx context.Context, roomID string) ([]domain.Message, error)

	// Append 追加一条消息。
	Append(ctx context.Context, msg *domain.Message) error

	// RoomIDs 返回有聊天记录（即用户已加入）的房间 ID。
	RoomIDs(ctx context.Context) ([]string, error)
}
