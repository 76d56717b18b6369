package repository

import (
	"context"

	"github.com/padmeamd/uroom/internal/domain"
)

// UserRepository 定义了用户资料的检索操作。
type UserRepository interface {
	// FindByID 根据用户 ID 查找用户，不存在时返回 ErrUserNotFound。
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
