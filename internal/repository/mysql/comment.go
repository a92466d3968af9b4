package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		dc := comments[i].ToDomain()
		res = append(res, &dc)
	}
	return res, nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, domain.ErrNotFound
	}
	dc := comment.ToDomain()
	return &dc, nil
}

// Store creates the comment and increments the post's comments_count as one
// unit, under the post row lock so it serializes with subtree deletion.
func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockPost(tx, comment.PostID); err != nil {
			return err
		}

		commentModel := model.NewCommentFromDomain(comment)
		if err := tx.Create(commentModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
			return err
		}

		comment.ID = commentModel.ID
		comment.CreatedAt = commentModel.CreatedAt
		comment.UpdatedAt = commentModel.UpdatedAt
		return nil
	})
}

func (c *commentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteSubtree removes the comment plus every transitive reply and
// decrements the post's comments_count by the removed-row count, all in one
// transaction holding the post row lock. A reply arriving concurrently
// blocks on the same lock, so the counter can never drift past the rows
// that were genuinely deleted.
func (c *commentRepository) DeleteSubtree(ctx context.Context, comment *domain.Comment) (removed int64, err error) {
	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockPost(tx, comment.PostID); err != nil {
			return err
		}

		ids, err := collectSubtreeIDs(tx, comment.ID)
		if err != nil {
			return err
		}

		result := tx.Where("id IN ?", ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		removed = result.RowsAffected

		// Guarded decrement: a counter already below the removed count
		// stays put rather than going negative.
		return tx.Model(&model.Post{}).
			Where("id = ? AND comments_count >= ?", comment.PostID, removed).
			UpdateColumn("comments_count", gorm.Expr("comments_count - ?", removed)).
			Error
	})
	return
}

// collectSubtreeIDs expands the descendant closure level by level:
// frontier -> direct children -> their children, until no rows come back.
func collectSubtreeIDs(tx *gorm.DB, rootID int64) ([]int64, error) {
	ids := []int64{rootID}
	frontier := []int64{rootID}
	for len(frontier) > 0 {
		var children []int64
		err := tx.Model(&model.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error
		if err != nil {
			return nil, err
		}
		ids = append(ids, children...)
		frontier = children
	}
	return ids, nil
}
