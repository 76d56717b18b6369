package repository

import (
	"context"

	"github.com/padmeamd/uroom/internal/domain"
)

// RoomRepository 定义了房间数据的存储和检索操作。
// ListRooms 的签名同时满足 discovery.RoomProvider。
type RoomRepository interface {
	// ListRooms 返回全部房间，顺序稳定（按创建顺序）。
	ListRooms(ctx context.Context) ([]domain.Room, error)

	// FindByID 根据房间 ID 查找房间，不存在时返回 ErrRoomNotFound。
	FindByID(ctx context.Context, id string) (*domain.Room, error)

	// Save 创建或更新房间。
	Save(ctx context.Context, room *domain.Room) error
}
