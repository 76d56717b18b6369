package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// RoomRepository 是 RoomRepository 接口的内存实现，保持插入顺序。
type RoomRepository struct {
	mu    sync.RWMutex
	order []string
	rooms map[string]domain.Room
}

// NewRoomRepository 创建内存房间仓库，并写入初始房间。
func NewRoomRepository(seed []domain.Room) *RoomRepository {
	r := &RoomRepository{rooms: make(map[string]domain.Room, len(seed))}
	for _, room := range seed {
		r.put(room)
	}
	return r
}

func (r *RoomRepository) put(room domain.Room) {
	if _, exists := r.rooms[room.ID]; !exists {
		r.order = append(r.order, room.ID)
	}
	r.rooms[room.ID] = room
}

// ListRooms 按插入顺序返回全部房间的副本。
func (r *RoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Room, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rooms[id])
	}
	return out, nil
}

// FindByID 根据 ID 查找房间。
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	return &room, nil
}

// Save 创建或更新房间。ID 不能为空。
func (r *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	if room == nil || room.ID == "" {
		return errors.New("memory: room id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(*room)
	return nil
}
