package feed

import (
	"context"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository"
)

// Service assembles a user's chronological feed from the accounts they
// follow. Ranking stays out of it: the feed is strictly recency-ordered.
type Service struct {
	postRepo   domain.PostRepository
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
}

var _ domain.FeedUsecase = (*Service)(nil)

func NewService(pr domain.PostRepository, fr domain.FollowRepository, ur domain.UserRepository) *Service {
	return &Service{
		postRepo:   pr,
		followRepo: fr,
		userRepo:   ur,
	}
}

func (s *Service) GetFeedPosts(ctx context.Context, userID int64, p domain.Pageable) ([]domain.Post, error) {
	repository.PageVerify(&p)

	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Following nobody is a valid state, not a query.
	if len(followingIDs) == 0 {
		return []domain.Post{}, nil
	}

	posts, err := s.postRepo.FetchFeed(ctx, followingIDs, p)
	if err != nil {
		return nil, err
	}
	if err := s.fillAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) fillAuthors(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(posts))
	seen := map[int64]bool{}
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for i := range posts {
		if u, ok := byID[posts[i].AuthorID]; ok {
			posts[i].Author = u
		}
	}
	return nil
}
