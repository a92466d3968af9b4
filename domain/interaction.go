package domain

import (
	"context"
	"time"
)

// Like is representing a like record. The pair (UserID, PostID) is unique;
// existence of the row is the sole source of truth for "has this user liked
// this post". Rows are created and destroyed, never updated.
type Like struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// Bookmark has the same shape and invariant as Like, toggled independently.
type Bookmark struct {
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// InteractionStatus is the read model returned by toggle and status calls.
type InteractionStatus struct {
	Liked          bool
	Bookmarked     bool
	LikesCount     int64
	CommentsCount  int64
	BookmarksCount int64
}

// ToggleResult reports the outcome of one toggle transaction.
type ToggleResult struct {
	// Active is true when the toggle left the record in place (liked /
	// bookmarked), false when it removed it.
	Active bool
	// PostAuthorID is the author of the target post, for notification fan-out.
	PostAuthorID int64
	// Counters as re-read inside the toggle transaction, after adjustment.
	LikesCount     int64
	CommentsCount  int64
	BookmarksCount int64
}

// InteractionRepository owns the check-then-act toggle sequences. Each toggle
// runs in a single transaction holding an exclusive lock on the target post
// row, so concurrent toggles on the same post serialize while unrelated posts
// stay unaffected.
type InteractionRepository interface {
	// ToggleLike flips the (user, post) like record and keeps likes_count
	// consistent. Returns ErrNotFound if the post doesn't exist.
	ToggleLike(ctx context.Context, postID, userID int64) (ToggleResult, error)

	// ToggleBookmark is the independent bookmark counterpart.
	ToggleBookmark(ctx context.Context, postID, userID int64) (ToggleResult, error)

	// LikeExists reports whether the like record exists, without side effects.
	LikeExists(ctx context.Context, postID, userID int64) (bool, error)

	// BookmarkExists reports whether the bookmark record exists.
	BookmarkExists(ctx context.Context, postID, userID int64) (bool, error)
}

// InteractionUsecase is the engagement toggle surface exposed to the REST
// layer. Toggles are idempotent in structure: the second call by the same
// user reverses the first, and no call on a consistent state is an error.
type InteractionUsecase interface {
	// ToggleLike requires an identified actor (userID > 0, otherwise
	// ErrAuthenticationRequired). Turning a like on notifies the post's
	// author unless the actor is the author.
	ToggleLike(ctx context.Context, postID, userID int64) (InteractionStatus, error)

	// ToggleBookmark never notifies.
	ToggleBookmark(ctx context.Context, postID, userID int64) (InteractionStatus, error)

	// Status returns the liked/bookmarked flags plus counters, read-only.
	// userID 0 means anonymous: both flags are false.
	Status(ctx context.Context, postID, userID int64) (InteractionStatus, error)
}
