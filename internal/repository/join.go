package repository

import (
	"context"

	"github.com/padmeamd/uroom/internal/domain"
)

// JoinRequestRepository 持久化加入申请，由后台 worker 调用。
type JoinRequestRepository interface {
	Save(ctx context.Context, req *domain.JoinRequest) error
}
