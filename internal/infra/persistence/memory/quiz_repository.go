package memory

import (
	"context"
	"sync"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// QuizRepository 是 QuizRepository 接口的内存实现。
type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[string]domain.Quiz
}

func NewQuizRepository(seed []domain.Quiz) *QuizRepository {
	r := &QuizRepository{quizzes: make(map[string]domain.Quiz, len(seed))}
	for _, q := range seed {
		r.quizzes[q.RoomID] = q
	}
	return r
}

func (r *QuizRepository) FindByRoomID(ctx context.Context, roomID string) (*domain.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quizzes[roomID]
	if !ok {
		return nil, repository.ErrQuizNotFound
	}
	q.Questions = append([]domain.QuizQuestion(nil), q.Questions...)
	return &q, nil
}

func (r *QuizRepository) Save(ctx context.Context, quiz *domain.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := *quiz
	q.Questions = append([]domain.QuizQuestion(nil), quiz.Questions...)
	r.quizzes[quiz.RoomID] = q
	return nil
}
