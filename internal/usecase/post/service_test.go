package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/domain/mocks"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/post"
)

func TestRecordView_CountedEmitsEvent(t *testing.T) {
	postViewRepo := new(mocks.PostViewRepository)
	events := new(mocks.EventPublisher)

	postViewRepo.On("RecordView", mock.Anything, int64(7), int64(42), "10.0.0.1").
		Return(true, nil).Once()
	events.On("Send", mock.MatchedBy(func(ev domain.EngagementEvent) bool {
		return ev.Type == domain.EventView && ev.PostID == 7
	})).Once()

	svc := post.NewService(new(mocks.PostRepository), postViewRepo, events)
	require.NoError(t, svc.RecordView(context.Background(), 7, 42, "10.0.0.1"))
	events.AssertExpectations(t)
}

func TestRecordView_RepeatViewIsSilent(t *testing.T) {
	postViewRepo := new(mocks.PostViewRepository)
	events := new(mocks.EventPublisher)

	postViewRepo.On("RecordView", mock.Anything, int64(7), int64(42), "10.0.0.1").
		Return(false, nil).Once()

	svc := post.NewService(new(mocks.PostRepository), postViewRepo, events)
	require.NoError(t, svc.RecordView(context.Background(), 7, 42, "10.0.0.1"))
	events.AssertNotCalled(t, "Send", mock.Anything)
}

func TestRecordView_PostMissing(t *testing.T) {
	postViewRepo := new(mocks.PostViewRepository)
	postViewRepo.On("RecordView", mock.Anything, int64(404), int64(0), "10.0.0.1").
		Return(false, domain.ErrNotFound).Once()

	svc := post.NewService(new(mocks.PostRepository), postViewRepo, new(mocks.EventPublisher))
	err := svc.RecordView(context.Background(), 404, 0, "10.0.0.1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := post.NewService(new(mocks.PostRepository), new(mocks.PostViewRepository), new(mocks.EventPublisher))

	_, err := svc.Search(context.Background(), "", domain.Pageable{Page: 1, Size: 10})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestSearch_Delegates(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	postRepo.On("Search", mock.Anything, "golang", mock.Anything).
		Return([]domain.Post{{ID: 1}}, nil).Once()

	svc := post.NewService(postRepo, new(mocks.PostViewRepository), new(mocks.EventPublisher))
	posts, err := svc.Search(context.Background(), "golang", domain.Pageable{Page: 1, Size: 10})

	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
