package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// GormQuizRepository 是 QuizRepository 接口的 GORM 实现，每道题一行。
type GormQuizRepository struct {
	db *gorm.DB
}

func NewGormQuizRepository(db *gorm.DB) *GormQuizRepository {
	if db == nil {
		panic("database connection cannot be nil for GormQuizRepository")
	}
	return &GormQuizRepository{db: db}
}

func (r *GormQuizRepository) FindByRoomID(ctx context.Context, roomID string) (*domain.Quiz, error) {
	var records []QuizQuestionRecord
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("position ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find quiz for room %s: %w", roomID, err)
	}
	if len(records) == 0 {
		return nil, repository.ErrQuizNotFound
	}
	quiz := &domain.Quiz{RoomID: roomID, Questions: make([]domain.QuizQuestion, 0, len(records))}
	for _, rec := range records {
		q := domain.QuizQuestion{
			ID:       rec.ID,
			Type:     domain.QuestionType(rec.Type),
			Question: rec.Question,
			Required: rec.Required,
		}
		if err := fromJSON(rec.Options, &q.Options); err != nil {
			return nil, fmt.Errorf("gorm: decode options of question %s: %w", rec.ID, err)
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	return quiz, nil
}

// Save 在事务中删除旧题目并写入新题目。
func (r *GormQuizRepository) Save(ctx context.Context, quiz *domain.Quiz) error {
	records := make([]QuizQuestionRecord, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		opts, err := toJSON(q.Options)
		if err != nil {
			return fmt.Errorf("gorm: encode options of question %s: %w", q.ID, err)
		}
		records = append(records, QuizQuestionRecord{
			ID:       q.ID,
			RoomID:   quiz.RoomID,
			Position: i,
			Type:     string(q.Type),
			Question: q.Question,
			Options:  opts,
			Required: q.Required,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", quiz.RoomID).Delete(&QuizQuestionRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save quiz for room %s: %w", quiz.RoomID, err)
	}
	return nil
}
