package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type interactionHandler struct {
	Service domain.InteractionUsecase
}

func NewInteractionHandler(svc domain.InteractionUsecase) *interactionHandler {
	return &interactionHandler{
		Service: svc,
	}
}

type interactionStatusResponse struct {
	Liked          bool  `json:"liked"`
	Bookmarked     bool  `json:"bookmarked"`
	LikesCount     int64 `json:"likes_count"`
	CommentsCount  int64 `json:"comments_count"`
	BookmarksCount int64 `json:"bookmarks_count"`
}

func newInteractionStatus(st domain.InteractionStatus) interactionStatusResponse {
	return interactionStatusResponse{
		Liked:          st.Liked,
		Bookmarked:     st.Bookmarked,
		LikesCount:     st.LikesCount,
		CommentsCount:  st.CommentsCount,
		BookmarksCount: st.BookmarksCount,
	}
}

// ToggleLike flips the caller's like on the post
func (h *interactionHandler) ToggleLike(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	pid := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	st, err := h.Service.ToggleLike(c.Request.Context(), pid, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newInteractionStatus(st))
}

// ToggleBookmark flips the caller's bookmark on the post
func (h *interactionHandler) ToggleBookmark(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	pid := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	st, err := h.Service.ToggleBookmark(c.Request.Context(), pid, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newInteractionStatus(st))
}

// Status returns the caller's flags plus the post counters, read-only.
// Works without authentication; flags are false for anonymous callers.
func (h *interactionHandler) Status(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	pid := int64(idP)

	var uid int64
	if userID, exists := c.Get("user_id"); exists {
		uid = userID.(int64)
	}

	st, err := h.Service.Status(c.Request.Context(), pid, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newInteractionStatus(st))
}
