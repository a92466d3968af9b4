package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/domain/mocks"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/notification"
)

func TestNotify_SelfActionIsNoOp(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	push := new(mocks.PushWorker)

	svc := notification.NewService(notificationRepo, userRepo, push)
	err := svc.Notify(context.Background(), 42, 42, domain.NotificationLike, nil)

	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	push.AssertNotCalled(t, "Send", mock.Anything)
}

func TestNotify_PersistsThenPushes(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)
	push := new(mocks.PushWorker)

	userRepo.On("GetByID", mock.Anything, int64(3)).
		Return(domain.User{ID: 3, Username: "author"}, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(42)).
		Return(domain.User{ID: 42, Username: "fan", DisplayName: "Fan"}, nil).Once()
	notificationRepo.On("Store", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientID == 3 && n.ActorID == 42 && n.Type == domain.NotificationLike
	})).Return(nil).Once()
	push.On("Send", mock.MatchedBy(func(task domain.PushTask) bool {
		return task.Username == "author" && task.Message.ActorUsername == "fan"
	})).Once()

	svc := notification.NewService(notificationRepo, userRepo, push)
	postID := int64(7)
	err := svc.Notify(context.Background(), 3, 42, domain.NotificationLike, &postID)

	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
	push.AssertExpectations(t)
}

func TestNotify_UnknownRecipient(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)

	userRepo.On("GetByID", mock.Anything, int64(99)).
		Return(domain.User{}, domain.ErrNotFound).Once()

	svc := notification.NewService(notificationRepo, userRepo, new(mocks.PushWorker))
	err := svc.Notify(context.Background(), 99, 42, domain.NotificationFollow, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	notificationRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestMarkAsRead_Forbidden(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	notificationRepo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.Notification{ID: 5, RecipientID: 3}, nil).Once()

	svc := notification.NewService(notificationRepo, new(mocks.UserRepository), new(mocks.PushWorker))
	err := svc.MarkAsRead(context.Background(), 5, 42)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	notificationRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkAsRead_AlreadyRead(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	notificationRepo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.Notification{ID: 5, RecipientID: 42, IsRead: true}, nil).Once()

	svc := notification.NewService(notificationRepo, new(mocks.UserRepository), new(mocks.PushWorker))
	err := svc.MarkAsRead(context.Background(), 5, 42)

	require.NoError(t, err)
	notificationRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkAsRead_OK(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	notificationRepo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.Notification{ID: 5, RecipientID: 42}, nil).Once()
	notificationRepo.On("MarkRead", mock.Anything, int64(5)).Return(nil).Once()

	svc := notification.NewService(notificationRepo, new(mocks.UserRepository), new(mocks.PushWorker))
	require.NoError(t, svc.MarkAsRead(context.Background(), 5, 42))
	notificationRepo.AssertExpectations(t)
}

func TestFetchByUser_FillsActors(t *testing.T) {
	notificationRepo := new(mocks.NotificationRepository)
	userRepo := new(mocks.UserRepository)

	items := []domain.Notification{
		{ID: 2, RecipientID: 42, ActorID: 7, Type: domain.NotificationComment},
		{ID: 1, RecipientID: 42, ActorID: 7, Type: domain.NotificationLike},
	}
	notificationRepo.On("FetchByRecipient", mock.Anything, int64(42), mock.Anything).
		Return(items, nil).Once()
	userRepo.On("GetByIDs", mock.Anything, []int64{7}).
		Return([]domain.User{{ID: 7, Username: "eve"}}, nil).Once()

	svc := notification.NewService(notificationRepo, userRepo, new(mocks.PushWorker))
	got, err := svc.FetchByUser(context.Background(), 42, domain.Pageable{Page: 1, Size: 10})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Actor)
	assert.Equal(t, "eve", got[0].Actor.Username)
	assert.Equal(t, "eve", got[1].Actor.Username)
}
