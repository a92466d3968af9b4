package interaction

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/metrics"
)

type Service struct {
	interactionRepo domain.InteractionRepository
	postRepo        domain.PostRepository
	notifier        domain.NotificationUsecase
	events          domain.EventPublisher
}

var _ domain.InteractionUsecase = (*Service)(nil)

// NewService will create a new interaction service object
func NewService(ir domain.InteractionRepository, pr domain.PostRepository, n domain.NotificationUsecase, ev domain.EventPublisher) *Service {
	return &Service{
		interactionRepo: ir,
		postRepo:        pr,
		notifier:        n,
		events:          ev,
	}
}

// ToggleLike flips the caller's like on the post. The repository serializes
// the check-then-act sequence under the post row lock; here we only fan out
// notification and event, neither of which may fail the toggle.
func (s *Service) ToggleLike(ctx context.Context, postID, userID int64) (domain.InteractionStatus, error) {
	if userID <= 0 {
		return domain.InteractionStatus{}, domain.ErrAuthenticationRequired
	}

	res, err := s.interactionRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return domain.InteractionStatus{}, err
	}

	if res.Active {
		metrics.TogglesTotal.WithLabelValues("like", "on").Inc()
		if err := s.notifier.Notify(ctx, res.PostAuthorID, userID, domain.NotificationLike, &postID); err != nil {
			logrus.Errorf("failed to notify like on post %d: %v", postID, err)
		}
		s.events.Send(domain.NewEngagementEvent(domain.EventLike, userID, postID))
	} else {
		metrics.TogglesTotal.WithLabelValues("like", "off").Inc()
		s.events.Send(domain.NewEngagementEvent(domain.EventUnlike, userID, postID))
	}

	bookmarked, err := s.interactionRepo.BookmarkExists(ctx, postID, userID)
	if err != nil {
		logrus.Warnf("failed to read bookmark state for post %d: %v", postID, err)
	}

	return domain.InteractionStatus{
		Liked:          res.Active,
		Bookmarked:     bookmarked,
		LikesCount:     res.LikesCount,
		CommentsCount:  res.CommentsCount,
		BookmarksCount: res.BookmarksCount,
	}, nil
}

// ToggleBookmark flips the caller's bookmark on the post. Bookmarks never
// notify anyone.
func (s *Service) ToggleBookmark(ctx context.Context, postID, userID int64) (domain.InteractionStatus, error) {
	if userID <= 0 {
		return domain.InteractionStatus{}, domain.ErrAuthenticationRequired
	}

	res, err := s.interactionRepo.ToggleBookmark(ctx, postID, userID)
	if err != nil {
		return domain.InteractionStatus{}, err
	}

	if res.Active {
		metrics.TogglesTotal.WithLabelValues("bookmark", "on").Inc()
		s.events.Send(domain.NewEngagementEvent(domain.EventBookmark, userID, postID))
	} else {
		metrics.TogglesTotal.WithLabelValues("bookmark", "off").Inc()
	}

	liked, err := s.interactionRepo.LikeExists(ctx, postID, userID)
	if err != nil {
		logrus.Warnf("failed to read like state for post %d: %v", postID, err)
	}

	return domain.InteractionStatus{
		Liked:          liked,
		Bookmarked:     res.Active,
		LikesCount:     res.LikesCount,
		CommentsCount:  res.CommentsCount,
		BookmarksCount: res.BookmarksCount,
	}, nil
}

// Status is the read-only interaction view; userID 0 means anonymous and
// both flags stay false.
func (s *Service) Status(ctx context.Context, postID, userID int64) (domain.InteractionStatus, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return domain.InteractionStatus{}, err
	}

	status := domain.InteractionStatus{
		LikesCount:     post.LikesCount,
		CommentsCount:  post.CommentsCount,
		BookmarksCount: post.BookmarksCount,
	}

	if userID > 0 {
		if status.Liked, err = s.interactionRepo.LikeExists(ctx, postID, userID); err != nil {
			return domain.InteractionStatus{}, err
		}
		if status.Bookmarked, err = s.interactionRepo.BookmarkExists(ctx, postID, userID); err != nil {
			return domain.InteractionStatus{}, err
		}
	}

	return status, nil
}
