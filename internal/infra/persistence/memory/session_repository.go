package memory

import (
	"context"
	"sync"
	"time"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

type sessionEntry struct {
	state     domain.SessionState
	expiresAt time.Time // 零值表示不过期
}

// SessionRepository 是 SessionRepository 接口的内存实现。
// 过期条目在读取时清理，每次写入也会顺带清掉已过期的其他会话。
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]sessionEntry), now: time.Now}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.sessions, id)
		return nil, repository.ErrSessionNotFound
	}
	state := e.state
	return &state, nil
}

func (r *SessionRepository) Save(ctx context.Context, state *domain.SessionState, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.purgeExpiredLocked(now)
	e := sessionEntry{state: *state}
	e.state.QueueIDs = append([]string(nil), state.QueueIDs...)
	e.state.HistoryIDs = append([]string(nil), state.HistoryIDs...)
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	r.sessions[state.ID] = e
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// purgeExpiredLocked 删除所有已过期的会话，调用方需持有 r.mu。
func (r *SessionRepository) purgeExpiredLocked(now time.Time) {
	for id, e := range r.sessions {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
