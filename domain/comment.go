package domain

import (
	"context"
	"time"
)

// Comment domain model. ParentID 0 marks a root comment; non-zero parents
// form a forest per post, and a parent always belongs to the same post.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	ParentID  int64     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// User is the comment author summary, filled on read paths
	User *User `json:"user,omitempty"`
	// Replies holds the direct children when the tree has been assembled
	Replies []*Comment `json:"replies,omitempty"`
}

// CommentUsecase is the comment surface exposed to the REST layer.
type CommentUsecase interface {
	// FetchByPost returns the comment forest for the post, roots and
	// siblings in ascending creation order, authors filled.
	FetchByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// FetchByPostSlug resolves the slug first, then behaves as FetchByPost.
	FetchByPostSlug(ctx context.Context, slug string) ([]*Comment, error)

	// Create persists the comment and bumps the post's comment counter as
	// one unit. A reply whose parent is missing or belongs to another post
	// fails with ErrInvalidParent.
	Create(ctx context.Context, c *Comment) error

	// Update edits the content; only the comment's author may edit.
	Update(ctx context.Context, commentID int64, content string, actor User) (*Comment, error)

	// Delete removes the comment and its whole reply subtree; permitted for
	// the comment's author or an admin. The post's comment counter drops by
	// exactly the number of rows removed.
	Delete(ctx context.Context, commentID int64, actor User) error
}

// CommentRepository is the comment persistence contract. Store and
// DeleteSubtree each run as one transaction under the post row lock, so the
// counter and the rows can never drift apart.
type CommentRepository interface {
	// FetchByPost returns all comments of the post in ascending creation
	// order (ties broken by id), the order tree assembly relies on.
	FetchByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// GetByID retrieves a single comment.
	// Returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Store persists the comment and increments the post's comments_count
	// in the same transaction. Backfills ID and CreatedAt.
	Store(ctx context.Context, c *Comment) error

	// UpdateContent rewrites the comment body.
	UpdateContent(ctx context.Context, id int64, content string) error

	// DeleteSubtree removes the comment and every descendant, decrementing
	// the post's comments_count by the number of removed rows, in one
	// transaction. Returns how many rows were removed.
	DeleteSubtree(ctx context.Context, c *Comment) (int64, error)
}
