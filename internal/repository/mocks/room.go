// Package mocks 提供 repository 接口的 testify mock 实现，供 service 测试使用。
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/padmeamd/uroom/internal/domain"
)

// RoomRepository 是 repository.RoomRepository 的 mock。
type RoomRepository struct {
	mock.Mock
}

func (m *RoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]domain.Room)
	return rooms, args.Error(1)
}

func (m *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

func (m *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
