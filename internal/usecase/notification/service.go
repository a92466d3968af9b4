package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/metrics"
)

// Service dispatches notifications: every delivery is persisted first,
// then pushed to the recipient's realtime channel on a best-effort basis.
type Service struct {
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	push             domain.PushWorker
}

var _ domain.NotificationUsecase = (*Service)(nil)

func NewService(nr domain.NotificationRepository, ur domain.UserRepository, push domain.PushWorker) *Service {
	return &Service{
		notificationRepo: nr,
		userRepo:         ur,
		push:             push,
	}
}

// Notify records a notification for recipientID triggered by actorID.
// Self-notification is a silent no-op. The realtime push never fails the
// persisted write: a full queue only drops the push.
func (s *Service) Notify(ctx context.Context, recipientID, actorID int64, typ domain.NotificationType, entityID *int64) error {
	if recipientID == actorID {
		return nil
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return err
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	n := &domain.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Type:        typ,
		EntityID:    entityID,
	}
	if err := s.notificationRepo.Store(ctx, n); err != nil {
		return err
	}
	metrics.NotificationsTotal.WithLabelValues(string(typ)).Inc()

	msg := domain.PushMessage{
		ID:               n.ID,
		Type:             typ,
		EntityID:         entityID,
		ActorID:          actor.ID,
		ActorUsername:    actor.Username,
		ActorDisplayName: actor.DisplayName,
		ActorAvatarURL:   actor.AvatarURL,
		CreatedAt:        n.CreatedAt,
	}
	s.push.Send(domain.PushTask{Username: recipient.Username, Message: msg})
	return nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != userID {
		return domain.ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *Service) FetchByUser(ctx context.Context, userID int64, page domain.Pageable) ([]domain.Notification, error) {
	items, err := s.notificationRepo.FetchByRecipient(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	if err := s.fillActors(ctx, items); err != nil {
		logrus.Warnf("failed to load notification actors for user %d: %v", userID, err)
	}
	return items, nil
}

func (s *Service) fillActors(ctx context.Context, items []domain.Notification) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(items))
	seen := map[int64]bool{}
	for _, n := range items {
		if !seen[n.ActorID] {
			seen[n.ActorID] = true
			ids = append(ids, n.ActorID)
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

	for i := range items {
		if u, ok := byID[items[i].ActorID]; ok {
			user := u
			items[i].Actor = &user
		}
	}
	return nil
}
