package request

import "github.com/Guyuepp/Go-Social-Blog/domain"

type CreateComment struct {
	Content  string `json:"content" binding:"required,max=2000"`
	ParentID int64  `json:"parent_id"` // 0 for a root comment
}

// ToDomain: Request -> Domain. PostID and UserID come from the route and
// the auth context, not the body.
func (r *CreateComment) ToDomain(postID, userID int64) domain.Comment {
	return domain.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  r.Content,
		ParentID: r.ParentID,
	}
}

type UpdateComment struct {
	Content string `json:"content" binding:"required,max=2000"`
}
