package post

import (
	"context"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository"
)

// Service covers the view-counting and search surface of posts.
type Service struct {
	postRepo     domain.PostRepository
	postViewRepo domain.PostViewRepository
	events       domain.EventPublisher
}

var _ domain.PostUsecase = (*Service)(nil)

func NewService(pr domain.PostRepository, pvr domain.PostViewRepository, ev domain.EventPublisher) *Service {
	return &Service{
		postRepo:     pr,
		postViewRepo: pvr,
		events:       ev,
	}
}

// RecordView counts one view per identity. A repeat view from the same user
// or anonymous address is absorbed silently; only a counted view emits an
// engagement event.
func (s *Service) RecordView(ctx context.Context, postID int64, userID int64, ipAddress string) error {
	counted, err := s.postViewRepo.RecordView(ctx, postID, userID, ipAddress)
	if err != nil {
		return err
	}
	if counted {
		s.events.Send(domain.NewEngagementEvent(domain.EventView, userID, postID))
	}
	return nil
}

func (s *Service) Search(ctx context.Context, query string, p domain.Pageable) ([]domain.Post, error) {
	if query == "" {
		return nil, domain.ErrBadParamInput
	}
	repository.PageVerify(&p)
	return s.postRepo.Search(ctx, query, p)
}
