package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql/model"
)

type interactionRepository struct {
	DB *gorm.DB
}

var _ domain.InteractionRepository = (*interactionRepository)(nil)

// NewInteractionRepository creates the repository owning like/bookmark
// toggle transactions.
func NewInteractionRepository(db *gorm.DB) *interactionRepository {
	return &interactionRepository{db}
}

// lockPost takes the exclusive row lock that serializes every
// check-then-act sequence touching the post's counters.
func lockPost(tx *gorm.DB, postID int64) (model.Post, error) {
	var post model.Post
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&post, "id = ?", postID).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return post, domain.ErrNotFound
	}
	return post, err
}

// readCounters re-reads the counter columns inside the transaction, after
// the adjustment, so the caller reports what was actually committed.
func readCounters(tx *gorm.DB, postID int64, res *domain.ToggleResult) error {
	var post model.Post
	err := tx.Select("likes_count", "comments_count", "bookmarks_count").
		First(&post, "id = ?", postID).
		Error
	if err != nil {
		return err
	}
	res.LikesCount = post.LikesCount
	res.CommentsCount = post.CommentsCount
	res.BookmarksCount = post.BookmarksCount
	return nil
}

func (m *interactionRepository) ToggleLike(ctx context.Context, postID, userID int64) (res domain.ToggleResult, err error) {
	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := lockPost(tx, postID)
		if err != nil {
			return err
		}
		res.PostAuthorID = post.AuthorID

		var count int64
		if err := tx.Model(&model.Like{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
				Delete(&model.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Post{}).
				Where("id = ? AND likes_count > 0", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
			res.Active = false
		} else {
			like := model.NewLikeFromDomain(domain.Like{PostID: postID, UserID: userID})
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Post{}).
				Where("id = ?", postID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
			res.Active = true
		}

		return readCounters(tx, postID, &res)
	})
	return
}

func (m *interactionRepository) ToggleBookmark(ctx context.Context, postID, userID int64) (res domain.ToggleResult, err error) {
	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := lockPost(tx, postID)
		if err != nil {
			return err
		}
		res.PostAuthorID = post.AuthorID

		var count int64
		if err := tx.Model(&model.Bookmark{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
				Delete(&model.Bookmark{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Post{}).
				Where("id = ? AND bookmarks_count > 0", postID).
				UpdateColumn("bookmarks_count", gorm.Expr("bookmarks_count - 1")).Error; err != nil {
				return err
			}
			res.Active = false
		} else {
			bookmark := model.NewBookmarkFromDomain(domain.Bookmark{PostID: postID, UserID: userID})
			if err := tx.Create(&bookmark).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Post{}).
				Where("id = ?", postID).
				UpdateColumn("bookmarks_count", gorm.Expr("bookmarks_count + 1")).Error; err != nil {
				return err
			}
			res.Active = true
		}

		return readCounters(tx, postID, &res)
	})
	return
}

func (m *interactionRepository) LikeExists(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (m *interactionRepository) BookmarkExists(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Bookmark{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}
