package repository

import (
	"context"
	"time"

	"github.com/padmeamd/uroom/internal/domain"
)

// SessionRepository 保存发现会话的快照，由内存或 Redis 实现。
type SessionRepository interface {
	// Get 读取会话快照，不存在或已过期时返回 ErrSessionNotFound。
	Get(ctx context.Context, id string) (*domain.SessionState, error)

	// Save 写入会话快照并刷新 TTL。ttl 为 0 表示不过期。
	Save(ctx context.Context, state *domain.SessionState, ttl time.Duration) error

	// Delete 删除会话，不存在时不报错。
	Delete(ctx context.Context, id string) error
}
