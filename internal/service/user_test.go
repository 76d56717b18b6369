package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
	"github.com/padmeamd/uroom/internal/repository/mocks"
	"github.com/padmeamd/uroom/internal/service"
)

func TestUserService_GetUser(t *testing.T) {
	svc := service.NewUserService(memory.NewUserRepository(memory.SeedUsers(testNow)))
	ctx := context.Background()

	user, err := svc.GetUser(ctx, service.DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, "Taylor Morgan", user.Name)

	_, err = svc.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserService_GetUser_RepositoryError(t *testing.T) {
	repo := new(mocks.UserRepository)
	svc := service.NewUserService(repo)
	ctx := context.Background()
	repo.On("FindByID", ctx, "u1").Return(nil, errors.New("connection reset")).Once()

	_, err := svc.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, service.ErrInternalServer)
	repo.AssertExpectations(t)
}
