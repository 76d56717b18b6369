package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/padmeamd/uroom/internal/domain"
)

// SessionRepository 是 repository.SessionRepository 的 mock。
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Get(ctx context.Context, id string) (*domain.SessionState, error) {
	args := m.Called(ctx, id)
	state, _ := args.Get(0).(*domain.SessionState)
	return state, args.Error(1)
}

func (m *SessionRepository) Save(ctx context.Context, state *domain.SessionState, ttl time.Duration) error {
	args := m.Called(ctx, state, ttl)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
