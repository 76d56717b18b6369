package repository

import (
	"context"

	"github.com/padmeamd/uroom/internal/domain"
)

// QuizRepository 存储房间的申请问卷。
type QuizRepository interface {
	// FindByRoomID 查找房间问卷，没有问卷时返回 ErrQuizNotFound。
	FindByRoomID(ctx context.Context, roomID string) (*domain.Quiz, error)

	// Save 整体替换房间的问卷题目。
	Save(ctx context.Context, quiz *domain.Quiz) error
}
