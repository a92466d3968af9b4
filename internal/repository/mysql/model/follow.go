package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type Follow struct {
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follow_pair"`
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:idx_follow_pair;index"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follows"
}

func NewFollowFromDomain(f *domain.Follow) *Follow {
	return &Follow{
		FollowerID:  f.FollowerID,
		FollowingID: f.FollowingID,
		CreatedAt:   f.CreatedAt,
	}
}
