package redisstate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// 使用进程内的 miniredis，不依赖外部 Redis
func newTestRepository(t *testing.T) (*RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionRepository(client, "uroom-test:"), mr
}

func TestRedisSessionRepository_SaveGetDelete(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	state := &domain.SessionState{
		ID:         "s-1",
		UserID:     "me",
		Urgency:    "all",
		Type:       "EVENT",
		QueueIDs:   []string{"2", "4"},
		HistoryIDs: []string{"6"},
	}
	require.NoError(t, repo.Save(ctx, state, time.Minute))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, state.QueueIDs, got.QueueIDs)
	assert.Equal(t, state.HistoryIDs, got.HistoryIDs)
	assert.Equal(t, "me", got.UserID)
	assert.True(t, mr.Exists("uroom-test:session:s-1"))

	require.NoError(t, repo.Delete(ctx, "s-1"))
	_, err = repo.Get(ctx, "s-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.NoError(t, repo.Delete(ctx, "s-1"), "deleting a missing session is not an error")
}

func TestRedisSessionRepository_TTL(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.SessionState{ID: "short"}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("uroom-test:session:short"))

	mr.FastForward(30 * time.Second)
	_, err := repo.Get(ctx, "short")
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)
	_, err = repo.Get(ctx, "short")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisSessionRepository_RedisUnavailable(t *testing.T) {
	repo, mr := newTestRepository(t)
	mr.Close()

	_, err := repo.Get(context.Background(), "s-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestRedisSessionRepository_SessionKey(t *testing.T) {
	client := redis.NewClient(&redis.Options{})
	defer client.Close()
	repo := NewRedisSessionRepository(client, "")
	assert.Equal(t, "uroom:session:abc", repo.sessionKey("abc"))
}
