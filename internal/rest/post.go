package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Social-Blog/domain"
	"github.com/Guyuepp/Go-Social-Blog/internal/repository"
	"github.com/Guyuepp/Go-Social-Blog/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultTrendingDays = 7
	TrendingDaysMin     = 1
	TrendingDaysMax     = 30
)

// PostHandler represent the httphandler for post listings and views
type PostHandler struct {
	Ranking domain.RankingUsecase
	Feed    domain.FeedUsecase
	Service domain.PostUsecase
}

func NewPostHandler(ranking domain.RankingUsecase, feed domain.FeedUsecase, svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Ranking: ranking,
		Feed:    feed,
		Service: svc,
	}
}

// FetchTrending will fetch the trending posts for the requested window
func (h *PostHandler) FetchTrending(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(DefaultTrendingDays)))
	if err != nil || days < TrendingDaysMin || days > TrendingDaysMax {
		days = DefaultTrendingDays
		logrus.Error("Invalid param 'days'")
	}
	since := time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	ctx := c.Request.Context()
	posts, err := h.Ranking.GetTrendingPosts(ctx, since, pageableFromQuery(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostListFromDomain(posts))
}

// FetchSimilar will fetch posts similar to the given post
func (h *PostHandler) FetchSimilar(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	ctx := c.Request.Context()
	posts, err := h.Ranking.GetSimilarPosts(ctx, id, pageableFromQuery(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostListFromDomain(posts))
}

// FetchFeed will fetch the posts of the authors the caller follows
func (h *PostHandler) FetchFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	posts, err := h.Feed.GetFeedPosts(ctx, userID.(int64), pageableFromQuery(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostListFromDomain(posts))
}

// Search will run a full-text search over published posts
func (h *PostHandler) Search(c *gin.Context) {
	query := c.Query("q")

	ctx := c.Request.Context()
	posts, err := h.Service.Search(ctx, query, pageableFromQuery(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPostListFromDomain(posts))
}

// RecordView counts a view of the post, deduplicated per viewer
func (h *PostHandler) RecordView(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	// Anonymous viewers are identified by client address
	var uid int64
	if userID, exists := c.Get("user_id"); exists {
		uid = userID.(int64)
	}

	ctx := c.Request.Context()
	if err := h.Service.RecordView(ctx, id, uid, c.ClientIP()); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func pageableFromQuery(c *gin.Context) domain.Pageable {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.Query("size"))
	if err != nil {
		size = 0
	}
	p := domain.Pageable{Page: page, Size: size}
	repository.PageVerify(&p)
	return p
}

// getStatusCode will get the code of the error returned by the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput, domain.ErrInvalidParent:
		return http.StatusBadRequest
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrAuthenticationRequired:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
