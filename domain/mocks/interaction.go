package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type InteractionRepository struct {
	mock.Mock
}

func (m *InteractionRepository) ToggleLike(ctx context.Context, postID, userID int64) (domain.ToggleResult, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(domain.ToggleResult), ret.Error(1)
}

func (m *InteractionRepository) ToggleBookmark(ctx context.Context, postID, userID int64) (domain.ToggleResult, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(domain.ToggleResult), ret.Error(1)
}

func (m *InteractionRepository) LikeExists(ctx context.Context, postID, userID int64) (bool, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(bool), ret.Error(1)
}

func (m *InteractionRepository) BookmarkExists(ctx context.Context, postID, userID int64) (bool, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(bool), ret.Error(1)
}

type InteractionUsecase struct {
	mock.Mock
}

func (m *InteractionUsecase) ToggleLike(ctx context.Context, postID, userID int64) (domain.InteractionStatus, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(domain.InteractionStatus), ret.Error(1)
}

func (m *InteractionUsecase) ToggleBookmark(ctx context.Context, postID, userID int64) (domain.InteractionStatus, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(domain.InteractionStatus), ret.Error(1)
}

func (m *InteractionUsecase) Status(ctx context.Context, postID, userID int64) (domain.InteractionStatus, error) {
	ret := m.Called(ctx, postID, userID)
	return ret.Get(0).(domain.InteractionStatus), ret.Error(1)
}
