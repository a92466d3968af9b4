package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

func (m *followRepository) Store(ctx context.Context, f *domain.Follow) error {
	result := m.DB.WithContext(ctx).Create(model.NewFollowFromDomain(f))
	if result.Error != nil {
		// The unique (follower_id, following_id) index surfaces replays.
		return domain.ErrConflict
	}
	return nil
}

func (m *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *followRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (m *followRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
