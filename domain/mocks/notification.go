package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	ret := m.Called(ctx, n)
	return ret.Error(0)
}

func (m *NotificationRepository) GetByID(ctx context.Context, id int64) (domain.Notification, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Notification), ret.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	ret := m.Called(ctx, userID)
	return ret.Error(0)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *NotificationRepository) FetchByRecipient(ctx context.Context, userID int64, p domain.Pageable) ([]domain.Notification, error) {
	ret := m.Called(ctx, userID, p)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.Notification), ret.Error(1)
}

type NotificationUsecase struct {
	mock.Mock
}

func (m *NotificationUsecase) Notify(ctx context.Context, recipientID, actorID int64, typ domain.NotificationType, entityID *int64) error {
	ret := m.Called(ctx, recipientID, actorID, typ, entityID)
	return ret.Error(0)
}

func (m *NotificationUsecase) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	ret := m.Called(ctx, notificationID, userID)
	return ret.Error(0)
}

func (m *NotificationUsecase) MarkAllAsRead(ctx context.Context, userID int64) error {
	ret := m.Called(ctx, userID)
	return ret.Error(0)
}

func (m *NotificationUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *NotificationUsecase) FetchByUser(ctx context.Context, userID int64, p domain.Pageable) ([]domain.Notification, error) {
	ret := m.Called(ctx, userID, p)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.Notification), ret.Error(1)
}

type RealtimePublisher struct {
	mock.Mock
}

func (m *RealtimePublisher) PublishToUser(ctx context.Context, username string, payload domain.PushMessage) error {
	ret := m.Called(ctx, username, payload)
	return ret.Error(0)
}
