package ranking

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository"
)

const (
	// DefaultTrendingWindow is the lookback applied when the caller gives
	// no window of their own.
	DefaultTrendingWindow = 7 * 24 * time.Hour

	trendingCacheTTL     = 5 * time.Minute
	trendingRebuildKey   = "trending:default"
	trendingQueryTimeout = 10 * time.Second
)

// Service computes trending order and similar-post candidate sets. The
// default trending page is served from cache; an expired entry keeps being
// served while a single goroutine rebuilds it.
type Service struct {
	postRepo domain.PostRepository
	userRepo domain.UserRepository
	cache    domain.TrendingCache
	sf       singleflight.Group
}

var _ domain.RankingUsecase = (*Service)(nil)

func NewService(pr domain.PostRepository, ur domain.UserRepository, cache domain.TrendingCache) *Service {
	return &Service{
		postRepo: pr,
		userRepo: ur,
		cache:    cache,
	}
}

// isDefaultPage reports whether the request matches the one page the cache
// holds: first page, default size.
func isDefaultPage(p domain.Pageable) bool {
	return p.Page <= 1 && p.Size == repository.DefaultPageSize
}

// isDefaultWindow reports whether since matches the default lookback. The
// cache holds only the default window; the tolerance absorbs the clock
// reads between the handler and this check.
func isDefaultWindow(since time.Time) bool {
	want := time.Now().UTC().Add(-DefaultTrendingWindow)
	diff := since.Sub(want)
	if diff < 0 {
		diff = -diff
	}
	return diff < time.Minute
}

func (s *Service) GetTrendingPosts(ctx context.Context, since time.Time, p domain.Pageable) ([]domain.Post, error) {
	if since.IsZero() {
		since = time.Now().UTC().Add(-DefaultTrendingWindow)
	}

	// Custom windows always go to the store; the cache only ever holds
	// the default-window first page.
	if !isDefaultPage(p) || !isDefaultWindow(since) {
		return s.queryTrending(ctx, since, p)
	}

	posts, expired, err := s.cache.GetTrending(ctx)
	switch {
	case err == nil && !expired:
		return posts, nil
	case err == nil && expired:
		// Serve stale, refresh in the background. Singleflight makes sure
		// only one rebuild runs no matter how many requests see the
		// expired entry.
		go s.rebuildTrending(since, p)
		return posts, nil
	case errors.Is(err, domain.ErrCacheMiss):
		return s.rebuildTrending(since, p)
	default:
		logrus.Warnf("trending cache read failed, falling back to store: %v", err)
		return s.queryTrending(ctx, since, p)
	}
}

func (s *Service) rebuildTrending(since time.Time, p domain.Pageable) ([]domain.Post, error) {
	res, err, _ := s.sf.Do(trendingRebuildKey, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), trendingQueryTimeout)
		defer cancel()

		posts, err := s.queryTrending(ctx, since, p)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetTrending(ctx, posts, trendingCacheTTL); err != nil {
			logrus.Warnf("failed to store trending cache: %v", err)
		}
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.Post), nil
}

func (s *Service) queryTrending(ctx context.Context, since time.Time, p domain.Pageable) ([]domain.Post, error) {
	repository.PageVerify(&p)
	posts, err := s.postRepo.FetchTrending(ctx, since, p)
	if err != nil {
		return nil, err
	}
	if err := s.fillAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetSimilarPosts returns published posts sharing the anchor's category or
// at least one tag. The anchor itself is never part of the result; an
// anchor with neither category nor tags yields an empty page.
func (s *Service) GetSimilarPosts(ctx context.Context, postID int64, p domain.Pageable) ([]domain.Post, error) {
	repository.PageVerify(&p)

	anchor, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.FetchSimilar(ctx, anchor.ID, anchor.CategoryID, anchor.TagIDs, p)
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
