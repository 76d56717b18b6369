package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/padmeamd/uroom/internal/domain"
)

// JoinRequestRepository 是 repository.JoinRequestRepository 的 mock。
type JoinRequestRepository struct {
	mock.Mock
}

func (m *JoinRequestRepository) Save(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
