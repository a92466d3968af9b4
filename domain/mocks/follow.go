package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) Store(ctx context.Context, f *domain.Follow) error {
	ret := m.Called(ctx, f)
	return ret.Error(0)
}

func (m *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	ret := m.Called(ctx, followerID, followingID)
	return ret.Error(0)
}

func (m *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	ret := m.Called(ctx, followerID, followingID)
	return ret.Get(0).(bool), ret.Error(1)
}

func (m *FollowRepository) ListFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	ret := m.Called(ctx, userID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]int64), ret.Error(1)
}
