package memory

import (
	"context"
	"sync"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// JoinRequestRepository 内存中的加入申请记录。
type JoinRequestRepository struct {
	mu       sync.Mutex
	requests []domain.JoinRequest
}

func NewJoinRequestRepository() *JoinRequestRepository {
	return &JoinRequestRepository{}
}

func (r *JoinRequestRepository) Save(ctx context.Context, req *domain.JoinRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.requests {
		if existing.ID == req.ID {
			return repository.ErrDuplicateEntry
		}
	}
	r.requests = append(r.requests, *req)
	return nil
}

// List 返回已记录申请的副本。
func (r *JoinRequestRepository) List() []domain.JoinRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.JoinRequest(nil), r.requests...)
}
