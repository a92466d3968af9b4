package model

import (
	"time"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type Post struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	AuthorID       int64      `gorm:"column:author_id;not null;index"`
	CategoryID     *int64     `gorm:"column:category_id;index"`
	Slug           string     `gorm:"type:varchar(191);uniqueIndex;not null"`
	Title          string     `gorm:"type:varchar(191);not null"`
	Content        string     `gorm:"type:longtext;not null"`
	Status         string     `gorm:"type:varchar(20);not null;index"`
	Views          int64      `gorm:"not null;default:0"`
	LikesCount     int64      `gorm:"column:likes_count;not null;default:0"`
	CommentsCount  int64      `gorm:"column:comments_count;not null;default:0"`
	BookmarksCount int64      `gorm:"column:bookmarks_count;not null;default:0"`
	PublishedAt    *time.Time `gorm:"column:published_at;index"`
	CreatedAt      time.Time  `gorm:"type:datetime"`
	UpdatedAt      time.Time  `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "posts"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:             m.ID,
		AuthorID:       m.AuthorID,
		Author:         domain.User{ID: m.AuthorID},
		CategoryID:     m.CategoryID,
		Slug:           m.Slug,
		Title:          m.Title,
		Content:        m.Content,
		Status:         domain.PostStatus(m.Status),
		Views:          m.Views,
		LikesCount:     m.LikesCount,
		CommentsCount:  m.CommentsCount,
		BookmarksCount: m.BookmarksCount,
		PublishedAt:    m.PublishedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PostTag is the post/tag join row; tag CRUD itself lives outside this
// module, the join is kept for the similar-posts candidate query.
type PostTag struct {
	PostID int64 `gorm:"column:post_id;primaryKey"`
	TagID  int64 `gorm:"column:tag_id;primaryKey"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
