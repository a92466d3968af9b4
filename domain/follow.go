package domain

import (
	"context"
	"time"
)

// Follow is representing a follow edge. The ordered pair
// (FollowerID, FollowingID) is unique and never self-referential.
type Follow struct {
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}

// FollowRepository defines the contract for follow-edge persistence.
type FollowRepository interface {
	// Store creates the edge. Returns ErrConflict if it already exists.
	Store(ctx context.Context, f *Follow) error

	// Delete removes the edge. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, followerID, followingID int64) error

	// Exists reports whether the edge exists.
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)

	// ListFollowingIDs returns the ids of every user userID follows.
	ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error)
}

// FollowUsecase is the follow surface exposed to the REST layer.
type FollowUsecase interface {
	// Follow creates the edge follower -> followingUsername and notifies
	// the followed user. Self-follow fails with ErrBadParamInput, an
	// existing edge with ErrConflict.
	Follow(ctx context.Context, followerID int64, followingUsername string) error

	// Unfollow removes the edge; ErrNotFound when not following.
	Unfollow(ctx context.Context, followerID int64, followingUsername string) error

	// IsFollowing reports the edge's existence.
	IsFollowing(ctx context.Context, followerID int64, followingUsername string) (bool, error)
}
