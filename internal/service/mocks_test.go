package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/padmeamd/uroom/internal/tasks"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(channel, eventType string, data interface{}) error {
	args := m.Called(channel, eventType, data)
	return args.Error(0)
}

type mockJoiner struct {
	mock.Mock
}

func (m *mockJoiner) RequestJoin(ctx context.Context, payload tasks.JoinRequestPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
