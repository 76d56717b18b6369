package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// GormRoomRepository 是 RoomRepository 接口的 GORM 实现
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository 创建 GormRoomRepository 实例
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	if db == nil {
		panic("database connection cannot be nil for GormRoomRepository")
	}
	return &GormRoomRepository{db: db}
}

// ListRooms 按插入顺序返回全部房间
func (r *GormRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var records []RoomRecord
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("gorm: list rooms: %w", err)
	}
	rooms := make([]domain.Room, 0, len(records))
	for i := range records {
		room, err := records[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("gorm: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// FindByID 根据房间 ID 查找房间
func (r *GormRoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	var rec RoomRecord
	err := r.db.WithContext(ctx).Where("room_id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find room by id %s: %w", id, err)
	}
	room, err := rec.toDomain()
	if err != nil {
		return nil, fmt.Errorf("gorm: %w", err)
	}
	return &room, nil
}

// Save 创建或更新房间（按 room_id 判断）
func (r *GormRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	rec, err := newRoomRecord(room)
	if err != nil {
		return fmt.Errorf("gorm: save room %s: %w", room.ID, err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing RoomRecord
		findErr := tx.Select("seq").Where("room_id = ?", room.ID).First(&existing).Error
		switch {
		case findErr == nil:
			rec.Seq = existing.Seq
			return tx.Save(rec).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			return tx.Create(rec).Error
		default:
			return findErr
		}
	})
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save room (id: %s, title: %s): %w", room.ID, room.Title, err)
	}
	return nil
}
