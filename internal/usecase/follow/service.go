package follow

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type service struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
	notifier   domain.NotificationUsecase
	events     domain.EventPublisher
}

var _ domain.FollowUsecase = (*service)(nil)

func NewService(fr domain.FollowRepository, ur domain.UserRepository, n domain.NotificationUsecase, ev domain.EventPublisher) *service {
	return &service{
		followRepo: fr,
		userRepo:   ur,
		notifier:   n,
		events:     ev,
	}
}

func (s *service) Follow(ctx context.Context, followerID int64, followingUsername string) error {
	if followerID <= 0 {
		return domain.ErrAuthenticationRequired
	}

	target, err := s.userRepo.GetByUsername(ctx, followingUsername)
	if err != nil {
		return err
	}
	if target.ID == followerID {
		return domain.ErrBadParamInput
	}

	exists, err := s.followRepo.Exists(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConflict
	}

	if err := s.followRepo.Store(ctx, &domain.Follow{FollowerID: followerID, FollowingID: target.ID}); err != nil {
		return err
	}

	if err := s.notifier.Notify(ctx, target.ID, followerID, domain.NotificationFollow, nil); err != nil {
		logrus.Errorf("failed to notify follow of user %d: %v", target.ID, err)
	}
	ev := domain.NewEngagementEvent(domain.EventFollow, followerID, 0)
	ev.TargetID = target.ID
	s.events.Send(ev)
	return nil
}

func (s *service) Unfollow(ctx context.Context, followerID int64, followingUsername string) error {
	if followerID <= 0 {
		return domain.ErrAuthenticationRequired
	}

	target, err := s.userRepo.GetByUsername(ctx, followingUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, followerID, target.ID)
}

func (s *service) IsFollowing(ctx context.Context, followerID int64, followingUsername string) (bool, error) {
	target, err := s.userRepo.GetByUsername(ctx, followingUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, followerID, target.ID)
}
