package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/domain/mocks"
	"github.com/Guyuepp/Go-Social-Blog/internal/rest"
)

func TestCreateCommentHandler_OK(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	content := faker.Sentence()

	svc.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.PostID == 7 && c.UserID == 42 && c.Content == content && c.ParentID == 0
	})).Return(nil).Once()

	h := rest.NewCommentHandler(svc)
	router := gin.New()
	router.POST("/posts/:id/comments", fakeAuth(42), h.CreateComment)

	body, err := json.Marshal(map[string]any{"content": content})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/7/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCreateCommentHandler_MissingContent(t *testing.T) {
	svc := new(mocks.CommentUsecase)

	h := rest.NewCommentHandler(svc)
	router := gin.New()
	router.POST("/posts/:id/comments", fakeAuth(42), h.CreateComment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/7/comments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentHandler_InvalidParent(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(domain.ErrInvalidParent).Once()

	h := rest.NewCommentHandler(svc)
	router := gin.New()
	router.POST("/posts/:id/comments", fakeAuth(42), h.CreateComment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/7/comments",
		strings.NewReader(`{"content":"hi","parent_id":999}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCommentHandler_Forbidden(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("Delete", mock.Anything, int64(9), mock.MatchedBy(func(u domain.User) bool {
		return u.ID == 42
	})).Return(domain.ErrForbidden).Once()

	h := rest.NewCommentHandler(svc)
	router := gin.New()
	router.DELETE("/comments/:commentID", fakeAuth(42), h.DeleteComment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/comments/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
