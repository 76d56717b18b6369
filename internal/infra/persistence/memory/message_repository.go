package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/padmeamd/uroom/internal/domain"
)

// MessageRepository 是 MessageRepository 接口的内存实现。
// 消息只在本地追加，没有投递保证。
type MessageRepository struct {
	mu     sync.RWMutex
	rooms  []string
	byRoom map[string][]domain.Message
}

func NewMessageRepository(seed []domain.Message) *MessageRepository {
	r := &MessageRepository{byRoom: make(map[string][]domain.Message)}
	for i := range seed {
		r.append(seed[i])
	}
	for _, msgs := range r.byRoom {
		sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	}
	return r
}

func (r *MessageRepository) append(msg domain.Message) {
	if _, ok := r.byRoom[msg.RoomID]; !ok {
		r.rooms = append(r.rooms, msg.RoomID)
	}
	r.byRoom[msg.RoomID] = append(r.byRoom[msg.RoomID], msg)
}

func (r *MessageRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Message{}, r.byRoom[roomID]...), nil
}

func (r *MessageRepository) Append(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.append(*msg)
	return nil
}

func (r *MessageRepository) RoomIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.rooms...), nil
}
