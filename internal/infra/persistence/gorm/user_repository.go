package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/padmeamd/uroom/internal/domain"
	"github.com/padmeamd/uroom/internal/repository"
)

// GormUserRepository 是 UserRepository 接口的 GORM 实现
type GormUserRepository struct {
	db *gorm.DB // 依赖 GORM DB 连接
}

// NewGormUserRepository 创建 GormUserRepository 实例
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	if db == nil {
		panic("database connection cannot be nil for GormUserRepository")
	}
	return &GormUserRepository{db: db}
}

// FindByID 实现根据用户 ID 查找用户
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var rec UserRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("gorm: find user by id %s: %w", id, err)
	}

	user := &domain.User{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		University:   rec.University,
		Age:          rec.Age,
		PhotoURL:     rec.PhotoURL,
		About:        rec.About,
		PortfolioURL: rec.PortfolioURL,
		InstagramURL: rec.InstagramURL,
		GithubURL:    rec.GithubURL,
		LinkedinURL:  rec.LinkedinURL,
		CreatedAt:    rec.CreatedAt,
	}
	if err := fromJSON(rec.Interests, &user.Interests); err != nil {
		return nil, fmt.Errorf("gorm: decode interests of user %s: %w", id, err)
	}
	if err := fromJSON(rec.Skills, &user.Skills); err != nil {
		return nil, fmt.Errorf("gorm: decode skills of user %s: %w", id, err)
	}
	return user, nil
}

// Save 创建或覆盖用户资料
func (r *GormUserRepository) Save(ctx context.Context, user *domain.User) error {
	rec := UserRecord{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		University:   user.University,
		Age:          user.Age,
		PhotoURL:     user.PhotoURL,
		About:        user.About,
		PortfolioURL: user.PortfolioURL,
		InstagramURL: user.InstagramURL,
		GithubURL:    user.GithubURL,
		LinkedinURL:  user.LinkedinURL,
		CreatedAt:    user.CreatedAt,
	}
	var err error
	if rec.Interests, err = toJSON(user.Interests); err != nil {
		return fmt.Errorf("gorm: encode interests of user %s: %w", user.ID, err)
	}
	if rec.Skills, err = toJSON(user.Skills); err != nil {
		return fmt.Errorf("gorm: encode skills of user %s: %w", user.ID, err)
	}
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save user (id: %s, name: %s): %w", user.ID, user.Name, err)
	}
	return nil
}
