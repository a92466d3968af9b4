package domain

import (
	"context"
	"time"
)

type PostStatus string

const (
	StatusDraft         PostStatus = "DRAFT"
	StatusPendingReview PostStatus = "PENDING_REVIEW"
	StatusPublished     PostStatus = "PUBLISHED"
	StatusHidden        PostStatus = "HIDDEN"
)

// CounterField names one of the denormalized engagement counters on a post.
// Counters are mutated only through PostRepository.AdjustCounter or inside the
// interaction/comment repository transactions, never by read-modify-write.
type CounterField string

const (
	CounterViews     CounterField = "views"
	CounterLikes     CounterField = "likes_count"
	CounterComments  CounterField = "comments_count"
	CounterBookmarks CounterField = "bookmarks_count"
)

// Post is representing the Post data struct
type Post struct {
	ID             int64
	AuthorID       int64
	Author         User       // Filled on read paths that need it
	CategoryID     *int64     // Optional category reference
	TagIDs         []int64    // Tag references, unordered
	Slug           string     // URL identity (unique)
	Title          string
	Content        string
	Status         PostStatus
	Views          int64
	LikesCount     int64
	CommentsCount  int64
	BookmarksCount int64
	PublishedAt    *time.Time // Set once, on first transition into PUBLISHED
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Pageable is a page/size pagination request.
type Pageable struct {
	Page int
	Size int
}

// Offset returns the row offset for the page, clamped to non-negative.
func (p Pageable) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// PostRepository defines the contract for post persistence and the listing
// queries consumed by the ranking and feed services.
type PostRepository interface {
	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// GetBySlug retrieves a single post by its slug.
	GetBySlug(ctx context.Context, slug string) (Post, error)

	// AdjustCounter applies a relative adjustment to one of the post's
	// counters. With floorAtZero the update is guarded so the stored value
	// can never go negative; a guarded update that matches no row is a no-op.
	AdjustCounter(ctx context.Context, id int64, field CounterField, delta int64, floorAtZero bool) error

	// FetchTrending returns PUBLISHED posts published at or after since,
	// ordered by trending score descending. Ties break by published_at then
	// id, both descending, so repeated calls over unchanged data agree.
	FetchTrending(ctx context.Context, since time.Time, p Pageable) ([]Post, error)

	// FetchSimilar returns PUBLISHED posts, excluding postID itself, that
	// share the given category or at least one of the given tags. An empty
	// tag set contributes no tag candidates.
	FetchSimilar(ctx context.Context, postID int64, categoryID *int64, tagIDs []int64, p Pageable) ([]Post, error)

	// FetchFeed returns PUBLISHED posts authored by any of authorIDs,
	// ordered by publication recency descending.
	FetchFeed(ctx context.Context, authorIDs []int64, p Pageable) ([]Post, error)

	// Search delegates full-text search over PUBLISHED posts to the store.
	Search(ctx context.Context, query string, p Pageable) ([]Post, error)
}

// PostViewRepository records deduplicated view events.
type PostViewRepository interface {
	// RecordView counts a view of the post from the given identity
	// (userID when > 0, otherwise ipAddress). The existence check and the
	// insert+increment run as one unit; a repeated view from the same
	// identity reports counted=false and leaves the counter untouched.
	RecordView(ctx context.Context, postID int64, userID int64, ipAddress string) (counted bool, err error)
}

// TrendingCache holds a short-lived copy of the default trending page. The
// expired flag signals the caller to rebuild in the background while stale
// data keeps being served.
type TrendingCache interface {
	// GetTrending returns the cached page. ErrCacheMiss when absent.
	GetTrending(ctx context.Context) (posts []Post, expired bool, err error)

	// SetTrending stores the page with a logical TTL.
	SetTrending(ctx context.Context, posts []Post, ttl time.Duration) error
}

// RankingUsecase computes trending order and similar-post candidate sets.
type RankingUsecase interface {
	GetTrendingPosts(ctx context.Context, since time.Time, p Pageable) ([]Post, error)
	GetSimilarPosts(ctx context.Context, postID int64, p Pageable) ([]Post, error)
}

// FeedUsecase resolves a user's follow graph into a chronological feed.
type FeedUsecase interface {
	GetFeedPosts(ctx context.Context, userID int64, p Pageable) ([]Post, error)
}

// PostUsecase covers the view-counting and search surface of posts.
type PostUsecase interface {
	// RecordView counts a view; userID 0 means anonymous and the ipAddress
	// identifies the viewer instead.
	RecordView(ctx context.Context, postID int64, userID int64, ipAddress string) error

	Search(ctx context.Context, query string, p Pageable) ([]Post, error)
}
