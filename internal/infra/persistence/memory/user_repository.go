package memory

import (
	"context"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// UserRepository 只读的内存用户仓库。
type UserRepository struct {
	users map[string]domain.User
}

func NewUserRepository(seed []domain.User) *UserRepository {
	r := &UserRepository{users: make(map[string]domain.User, len(seed))}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}
