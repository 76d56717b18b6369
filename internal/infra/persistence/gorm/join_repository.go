package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// GormJoinRequestRepository 是 JoinRequestRepository 接口的 GORM 实现
type GormJoinRequestRepository struct {
	db *gorm.DB
}

func NewGormJoinRequestRepository(db *gorm.DB) *GormJoinRequestRepository {
	if db == nil {
		panic("database connection cannot be nil for GormJoinRequestRepository")
	}
	return &GormJoinRequestRepository{db: db}
}

func (r *GormJoinRequestRepository) Save(ctx context.Context, req *domain.JoinRequest) error {
	answers, err := toJSON(req.Answers)
	if err != nil {
		return fmt.Errorf("gorm: encode answers of join request %s: %w", req.ID, err)
	}
	rec := JoinRequestRecord{
		ID:          req.ID,
		RoomID:      req.RoomID,
		ApplicantID: req.ApplicantID,
		Outcome:     req.Outcome,
		Status:      req.Status,
		Answers:     answers,
		CreatedAt:   req.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isDuplicateEntryError(err) {
			// asynq 重试时可能重复写入同一条申请
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save join request %s: %w", req.ID, err)
	}
	return nil
}
