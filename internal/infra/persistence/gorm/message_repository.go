package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/padmeamd/uroom/internal/domain"
)

// GormMessageRepository 是 MessageRepository 接口的 GORM 实现
type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	if db == nil {
		panic("database connection cannot be nil for GormMessageRepository")
	}
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Message, error) {
	var records []MessageRecord
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("created_at ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list messages for room %s: %w", roomID, err)
	}
	msgs := make([]domain.Message, 0, len(records))
	for _, rec := range records {
		msgs = append(msgs, domain.Message{
			ID:           rec.ID,
			RoomID:       rec.RoomID,
			SenderID:     rec.SenderID,
			SenderName:   rec.SenderName,
			SenderAvatar: rec.SenderAvatar,
			Text:         rec.Text,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return msgs, nil
}

func (r *GormMessageRepository) Append(ctx context.Context, msg *domain.Message) error {
	rec := MessageRecord{
		ID:           msg.ID,
		RoomID:       msg.RoomID,
		SenderID:     msg.SenderID,
		SenderName:   msg.SenderName,
		SenderAvatar: msg.SenderAvatar,
		Text:         msg.Text,
		CreatedAt:    msg.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("gorm: append message to room %s: %w", msg.RoomID, err)
	}
	return nil
}

// RoomIDs 返回有消息的房间，按最早一条消息排序。
func (r *GormMessageRepository) RoomIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&MessageRecord{}).
		Select("room_id").
		Group("room_id").
		Order("MIN(created_at) ASC").
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list chat room ids: %w", err)
	}
	return ids, nil
}
