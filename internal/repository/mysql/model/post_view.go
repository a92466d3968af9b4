package model

import "time"

// PostView is one deduplicated view record: at most one row per
// (post, user) for identified viewers and per (post, ip) for anonymous ones.
type PostView struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null;index:idx_view_post"`
	UserID    *int64    `gorm:"column:user_id;index:idx_view_post"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45);index:idx_view_post"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (PostView) TableName() string {
	return "post_views"
}
