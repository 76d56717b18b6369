package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// DefaultUserID 未携带用户标识的请求视为该演示用户
const DefaultUserID = "me"

// UserService 提供用户资料查询
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo repository.UserRepository) *UserService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for UserService")
	}
	return &UserService{userRepo: userRepo}
}

// GetUser 根据 ID 返回用户资料
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithField("user_id", id).WithError(err).Error("GetUser: Repository error")
		return nil, ErrInternalServer
	}
	return user, nil
}
