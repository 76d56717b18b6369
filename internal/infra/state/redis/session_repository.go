package redisstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// RedisSessionRepository 是 SessionRepository 接口的 Redis 实现，
// 会话快照以 JSON 字符串保存，依靠 key 的 TTL 过期。
type RedisSessionRepository struct {
	client    redis.Cmdable
	keyPrefix string
}

// NewRedisSessionRepository 创建 RedisSessionRepository 实例
func NewRedisSessionRepository(client redis.Cmdable, keyPrefix string) *RedisSessionRepository {
	if client == nil {
		panic("redis client cannot be nil for RedisSessionRepository")
	}
	if keyPrefix == "" {
		keyPrefix = "uroom:"
	}
	return &RedisSessionRepository{client: client, keyPrefix: keyPrefix}
}

func (r *RedisSessionRepository) sessionKey(id string) string {
	return fmt.Sprintf("%ssession:%s", r.keyPrefix, id)
}

// Get 读取会话快照
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	key := r.sessionKey(id)
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis: failed to get session %s from %s: %w", id, key, err)
	}
	var state domain.SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("redis: failed to unmarshal session %s from %s: %w", id, key, err)
	}
	return &state, nil
}

// Save 写入会话快照并刷新 TTL (ttl 为 0 表示永不过期)
func (r *RedisSessionRepository) Save(ctx context.Context, state *domain.SessionState, ttl time.Duration) error {
	key := r.sessionKey(state.ID)
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal session %s: %w", state.ID, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"payload_size": len(payload),
			"queue_len":    len(state.QueueIDs),
		}).WithError(err).Error("Redis SET session failed")
		return fmt.Errorf("redis: failed to save session %s on key %s: %w", state.ID, key, err)
	}
	return nil
}

// Delete 删除会话，key 不存在时不报错
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	key := r.sessionKey(id)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis: failed to delete session %s on key %s: %w", id, key, err)
	}
	return nil
}
