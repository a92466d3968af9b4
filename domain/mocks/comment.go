package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) FetchByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, postID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]*domain.Comment), ret.Error(1)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ret := m.Called(ctx, id)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.Comment), ret.Error(1)
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (m *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	ret := m.Called(ctx, id, content)
	return ret.Error(0)
}

func (m *CommentRepository) DeleteSubtree(ctx context.Context, c *domain.Comment) (int64, error) {
	ret := m.Called(ctx, c)
	return ret.Get(0).(int64), ret.Error(1)
}

type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) FetchByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, postID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]*domain.Comment), ret.Error(1)
}

func (m *CommentUsecase) FetchByPostSlug(ctx context.Context, slug string) ([]*domain.Comment, error) {
	ret := m.Called(ctx, slug)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]*domain.Comment), ret.Error(1)
}

func (m *CommentUsecase) Create(ctx context.Context, c *domain.Comment) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (m *CommentUsecase) Update(ctx context.Context, commentID int64, content string, actor domain.User) (*domain.Comment, error) {
	ret := m.Called(ctx, commentID, content, actor)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.Comment), ret.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, commentID int64, actor domain.User) error {
	ret := m.Called(ctx, commentID, actor)
	return ret.Error(0)
}
