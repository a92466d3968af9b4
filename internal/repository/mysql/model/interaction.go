package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type Like struct {
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:idx_like_user_post"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_like_user_post"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l domain.Like) Like {
	return Like{
		PostID:    l.PostID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}

type Bookmark struct {
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:idx_bookmark_user_post"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_bookmark_user_post"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func NewBookmarkFromDomain(b domain.Bookmark) Bookmark {
	return Bookmark{
		PostID:    b.PostID,
		UserID:    b.UserID,
		CreatedAt: b.CreatedAt,
	}
}
