package feed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/domain/mocks"
	"github.com/Guyuepp/Go-Social-Blog/internal/usecase/feed"
)

func TestGetFeedPosts_FollowingNobody(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	followRepo := new(mocks.FollowRepository)

	followRepo.On("ListFollowingIDs", mock.Anything, int64(42)).
		Return([]int64{}, nil).Once()

	svc := feed.NewService(postRepo, followRepo, new(mocks.UserRepository))
	posts, err := svc.GetFeedPosts(context.Background(), 42, domain.Pageable{Page: 1, Size: 10})

	require.NoError(t, err)
	assert.Empty(t, posts)
	postRepo.AssertNotCalled(t, "FetchFeed", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetFeedPosts_FillsAuthors(t *testing.T) {
	postRepo := new(mocks.PostRepository)
	followRepo := new(mocks.FollowRepository)
	userRepo := new(mocks.UserRepository)

	followRepo.On("ListFollowingIDs", mock.Anything, int64(42)).
		Return([]int64{3, 4}, nil).Once()
	postRepo.On("FetchFeed", mock.Anything, []int64{3, 4}, mock.Anything).
		Return([]domain.Post{
			{ID: 2, AuthorID: 4, Title: "newer"},
			{ID: 1, AuthorID: 3, Title: "older"},
		}, nil).Once()
	userRepo.On("GetByIDs", mock.Anything, []int64{4, 3}).
		Return([]domain.User{{ID: 3, Username: "a"}, {ID: 4, Username: "b"}}, nil).Once()

	svc := feed.NewService(postRepo, followRepo, userRepo)
	posts, err := svc.GetFeedPosts(context.Background(), 42, domain.Pageable{Page: 1, Size: 10})

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].Author.Username)
	assert.Equal(t, "a", posts[1].Author.Username)
}

func TestGetFeedPosts_RepoError(t *testing.T) {
	followRepo := new(mocks.FollowRepository)
	followRepo.On("ListFollowingIDs", mock.Anything, int64(42)).
		Return(nil, domain.ErrInternalServerError).Once()

	svc := feed.NewService(new(mocks.PostRepository), followRepo, new(mocks.UserRepository))
	_, err := svc.GetFeedPosts(context.Background(), 42, domain.Pageable{Page: 1, Size: 10})

	assert.ErrorIs(t, err, domain.ErrInternalServerError)
}
