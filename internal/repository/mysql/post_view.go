package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql/model"
)

type postViewRepository struct {
	DB *gorm.DB
}

var _ domain.PostViewRepository = (*postViewRepository)(nil)

func NewPostViewRepository(db *gorm.DB) *postViewRepository {
	return &postViewRepository{db}
}

// RecordView runs dedup-then-increment as one unit: the post row lock makes
// the existence check and the insert+increment atomic per post, so two
// concurrent first-views from the same identity serialize and only one
// counts.
func (m *postViewRepository) RecordView(ctx context.Context, postID int64, userID int64, ipAddress string) (counted bool, err error) {
	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockPost(tx, postID); err != nil {
			return err
		}

		q := tx.Model(&model.PostView{}).Where("post_id = ?", postID)
		if userID > 0 {
			q = q.Where("user_id = ?", userID)
		} else {
			q = q.Where("user_id IS NULL AND ip_address = ?", ipAddress)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		view := model.PostView{PostID: postID, IPAddress: ipAddress}
		if userID > 0 {
			view.UserID = &userID
		}
		if err := tx.Create(&view).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
			return err
		}
		counted = true
		return nil
	})
	return
}
