package response

import "github.com/Guyuepp/Go-Social-Blog/domain"

type Post struct {
	ID             int64  `json:"id"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	AuthorName     string `json:"author_name"`
	AuthorUsername string `json:"author_username"`
	Views          int64  `json:"views"`
	LikesCount     int64  `json:"likes_count"`
	CommentsCount  int64  `json:"comments_count"`
	BookmarksCount int64  `json:"bookmarks_count"`
	PublishedAt    string `json:"published_at,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	res := Post{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          p.Title,
		Content:        p.Content,
		AuthorName:     p.Author.DisplayName,
		AuthorUsername: p.Author.Username,
		Views:          p.Views,
		LikesCount:     p.LikesCount,
		CommentsCount:  p.CommentsCount,
		BookmarksCount: p.BookmarksCount,
		CreatedAt:      p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:      p.UpdatedAt.Format(DateTimeFormat),
	}
	if p.PublishedAt != nil {
		res.PublishedAt = p.PublishedAt.Format(DateTimeFormat)
	}
	return res
}

func NewPostListFromDomain(posts []domain.Post) []Post {
	res := make([]Post, len(posts))
	for i := range posts {
		res[i] = NewPostFromDomain(&posts[i])
	}
	return res
}
