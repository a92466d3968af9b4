package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository/mysql/model"
)

// Trending score weights: views count once, likes three times, comments five.
const (
	trendingLikeWeight    = 3
	trendingCommentWeight = 5
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository creates the gorm-backed post repository.
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	res.TagIDs, err = m.fetchTagIDs(ctx, res.ID)
	return
}

func (m *postRepository) GetBySlug(ctx context.Context, slug string) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "slug = ?", slug).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = post.ToDomain()
	res.TagIDs, err = m.fetchTagIDs(ctx, res.ID)
	return
}

func (m *postRepository) fetchTagIDs(ctx context.Context, postID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.PostTag{}).
		Where("post_id = ?", postID).
		Pluck("tag_id", &ids).
		Error
	return ids, err
}

// AdjustCounter applies `col = col + delta` in place. With floorAtZero a
// negative delta is guarded by `col >= -delta`, so a lost race or a replayed
// decrement degrades to a no-op instead of an undercount below zero.
func (m *postRepository) AdjustCounter(ctx context.Context, id int64, field domain.CounterField, delta int64, floorAtZero bool) error {
	switch field {
	case domain.CounterViews, domain.CounterLikes, domain.CounterComments, domain.CounterBookmarks:
	default:
		return domain.ErrBadParamInput
	}
	col := string(field)

	tx := m.DB.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id)
	guarded := floorAtZero && delta < 0
	if guarded {
		tx = tx.Where(col+" >= ?", -delta)
	}
	result := tx.UpdateColumn(col, gorm.Expr(col+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 && !guarded {
		return domain.ErrNotFound
	}
	return nil
}

func (m *postRepository) FetchTrending(ctx context.Context, since time.Time, p domain.Pageable) ([]domain.Post, error) {
	repository.PageVerify(&p)
	var posts []model.Post
	order := fmt.Sprintf("(views + likes_count * %d + comments_count * %d) DESC, published_at DESC, id DESC",
		trendingLikeWeight, trendingCommentWeight)
	err := m.DB.WithContext(ctx).
		Where("status = ? AND published_at >= ?", domain.StatusPublished, since).
		Order(order).
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(posts), nil
}

func (m *postRepository) FetchSimilar(ctx context.Context, postID int64, categoryID *int64, tagIDs []int64, p domain.Pageable) ([]domain.Post, error) {
	repository.PageVerify(&p)

	tx := m.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Where("id <> ?", postID)

	// A source post with neither category nor tags has no candidate set;
	// the query must not degrade to matching everything.
	switch {
	case categoryID != nil && len(tagIDs) > 0:
		tx = tx.Where("category_id = ? OR id IN (?)", *categoryID, m.tagMatchSubquery(tagIDs))
	case categoryID != nil:
		tx = tx.Where("category_id = ?", *categoryID)
	case len(tagIDs) > 0:
		tx = tx.Where("id IN (?)", m.tagMatchSubquery(tagIDs))
	default:
		return []domain.Post{}, nil
	}

	var posts []model.Post
	err := tx.Order("published_at DESC, id DESC").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(posts), nil
}

func (m *postRepository) tagMatchSubquery(tagIDs []int64) *gorm.DB {
	return m.DB.Model(&model.PostTag{}).
		Select("post_id").
		Where("tag_id IN ?", tagIDs)
}

func (m *postRepository) FetchFeed(ctx context.Context, authorIDs []int64, p domain.Pageable) ([]domain.Post, error) {
	if len(authorIDs) == 0 {
		return []domain.Post{}, nil
	}
	repository.PageVerify(&p)
	var posts []model.Post
	err := m.DB.WithContext(ctx).
		Where("status = ? AND author_id IN ?", domain.StatusPublished, authorIDs).
		Order("published_at DESC, id DESC").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(posts), nil
}

func (m *postRepository) Search(ctx context.Context, query string, p domain.Pageable) ([]domain.Post, error) {
	repository.PageVerify(&p)
	var posts []model.Post
	err := m.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Where("MATCH(title, content) AGAINST(? IN BOOLEAN MODE)", query).
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return toDomainPosts(posts), nil
}

func toDomainPosts(posts []model.Post) []domain.Post {
	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res
}
