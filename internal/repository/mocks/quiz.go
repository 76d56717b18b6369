package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/padmeamd/uroom/internal/domain"
)

// QuizRepository 是 repository.QuizRepository 的 mock。
type QuizRepository struct {
	mock.Mock
}

func (m *QuizRepository) FindByRoomID(ctx context.Context, roomID string) (*domain.Quiz, error) {
	args := m.Called(ctx, roomID)
	quiz, _ := args.Get(0).(*domain.Quiz)
	return quiz, args.Error(1)
}

func (m *QuizRepository) Save(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}
