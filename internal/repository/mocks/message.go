package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/padmeamd/uroom/internal/domain"
)

// MessageRepository 是 repository.MessageRepository 的 mock。
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Message, error) {
	args := m.Called(ctx, roomID)
	msgs, _ := args.Get(0).([]domain.Message)
	return msgs, args.Error(1)
}

func (m *MessageRepository) Append(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) RoomIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
