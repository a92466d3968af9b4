package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (m *PostRepository) GetBySlug(ctx context.Context, slug string) (domain.Post, error) {
	ret := m.Called(ctx, slug)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (m *PostRepository) AdjustCounter(ctx context.Context, id int64, field domain.CounterField, delta int64, floorAtZero bool) error {
	ret := m.Called(ctx, id, field, delta, floorAtZero)
	return ret.Error(0)
}

func (m *PostRepository) FetchTrending(ctx context.Context, since time.Time, p domain.Pageable) ([]domain.Post, error) {
	ret := m.Called(ctx, since, p)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.Post), ret.Error(1)
}

func (m *PostRepository) FetchSimilar(ctx context.Context, postID int64, categoryID *int64, tagIDs []int64, p domain.Pageable) ([]domain.Post, error) {
	ret := m.Called(ctx, postID, categoryID, tagIDs, p)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.Post), ret.Error(1)
}

func (m *PostRepository) FetchFeed(ctx context.Context, authorIDs []int64, p domain.Pageable) ([]domain.Post, error) {
	ret := m.Called(ctx, authorIDs, p)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.Post), ret.Error(1)
}

func (m *PostRepository) Search(ctx context.Context, query string, p domain.Pageable) ([]domain.Post, error) {
	ret := m.Called(ctx, query, p)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.Post), ret.Error(1)
}

type PostViewRepository struct {
	mock.Mock
}

func (m *PostViewRepository) RecordView(ctx context.Context, postID int64, userID int64, ipAddress string) (bool, error) {
	ret := m.Called(ctx, postID, userID, ipAddress)
	return ret.Get(0).(bool), ret.Error(1)
}

type TrendingCache struct {
	mock.Mock
}

func (m *TrendingCache) GetTrending(ctx context.Context) ([]domain.Post, bool, error) {
	ret := m.Called(ctx)
	if ret.Get(0) == nil {
		return nil, ret.Get(1).(bool), ret.Error(2)
	}
	return ret.Get(0).([]domain.Post), ret.Get(1).(bool), ret.Error(2)
}

func (m *TrendingCache) SetTrending(ctx context.Context, posts []domain.Post, ttl time.Duration) error {
	ret := m.Called(ctx, posts, ttl)
	return ret.Error(0)
}
