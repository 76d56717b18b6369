package setup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	gormpersistence "github.com/padmeamd/uroom/internal/infra/persistence/gorm"
	"github.com/padmeamd/uroom/internal/infra/persistence/memory"
)

// MigrateDB 自动迁移所有表结构
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return errors.New("cannot migrate database with nil DB connection")
	}
	if err := db.AutoMigrate(gormpersistence.AllModels()...); err != nil {
		logrus.Errorf("Failed to auto-migrate tables: %v", err)
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}
	logrus.Info("Database migration completed successfully")
	return nil
}

// SeedDB 在房间表为空时写入演示数据
func SeedDB(ctx context.Context, db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.WithContext(ctx).Model(&gormpersistence.RoomRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count > 0 {
		logrus.WithField("rooms", count).Debug("Database already seeded")
		return nil
	}

	rooms := gormpersistence.NewGormRoomRepository(db)
	for _, room := range memory.SeedRooms(now) {
		room := room
		if err := rooms.Save(ctx, &room); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", room.ID, err)
		}
	}
	quizzes := gormpersistence.NewGormQuizRepository(db)
	for _, quiz := range memory.SeedQuizzes() {
		quiz := quiz
		if err := quizzes.Save(ctx, &quiz); err != nil {
			return fmt.Errorf("failed to seed quiz for room %s: %w", quiz.RoomID, err)
		}
	}
	messages := gormpersistence.NewGormMessageRepository(db)
	for _, msg := range memory.SeedMessages(now) {
		msg := msg
		if err := messages.Append(ctx, &msg); err != nil {
			return fmt.Errorf("failed to seed message %s: %w", msg.ID, err)
		}
	}
	users := gormpersistence.NewGormUserRepository(db)
	for _, user := range memory.SeedUsers(now) {
		user := user
		if err := users.Save(ctx, &user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.ID, err)
		}
	}
	logrus.Info("Database seeded with demo data")
	return nil
}
