package comment

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Social-Blog/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	notifier    domain.NotificationUsecase
	events      domain.EventPublisher
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(cr domain.CommentRepository, pr domain.PostRepository, ur domain.UserRepository, n domain.NotificationUsecase, ev domain.EventPublisher) *service {
	return &service{
		commentRepo: cr,
		postRepo:    pr,
		userRepo:    ur,
		notifier:    n,
		events:      ev,
	}
}

func (s *service) FetchByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	flat, err := s.commentRepo.FetchByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.fillAuthorDetails(ctx, flat); err != nil {
		return nil, err
	}

	return buildTree(flat), nil
}

func (s *service) FetchByPostSlug(ctx context.Context, slug string) ([]*domain.Comment, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.FetchByPost(ctx, post.ID)
}

// buildTree reconstructs the reply forest from the flat creation-ordered
// list: one pass wraps nodes by id, one pass links children. Because the
// input is pre-sorted, sibling order at every level is creation order.
func buildTree(flat []*domain.Comment) []*domain.Comment {
	nodes := make(map[int64]*domain.Comment, len(flat))
	for _, c := range flat {
		c.Replies = []*domain.Comment{}
		nodes[c.ID] = c
	}

	roots := make([]*domain.Comment, 0, len(flat))
	for _, c := range flat {
		if c.ParentID == 0 {
			roots = append(roots, c)
			continue
		}
		if parent, ok := nodes[c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}
	return roots
}

func (s *service) fillAuthorDetails(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	mapUsers := map[int64]domain.User{}
	for _, c := range comments {
		mapUsers[c.UserID] = domain.User{}
	}

	g, ctx := errgroup.WithContext(ctx)
	chanUser := make(chan domain.User)
	for userID := range mapUsers {
		g.Go(func() error {
			res, err := s.userRepo.GetByID(ctx, userID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		if err := g.Wait(); err != nil {
			logrus.Error(err)
		}
	}()

	for user := range chanUser {
		mapUsers[user.ID] = user
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, c := range comments {
		if u, ok := mapUsers[c.UserID]; ok {
			user := u
			c.User = &user
		}
	}
	return nil
}

// Create persists a comment and notifies the post author for roots or the
// parent's author for replies, self-notification suppressed downstream.
func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	post, err := s.postRepo.GetByID(ctx, c.PostID)
	if err != nil {
		return err
	}

	notifyTarget := post.AuthorID
	if c.ParentID != 0 {
		parent, err := s.commentRepo.GetByID(ctx, c.ParentID)
		if err != nil {
			return domain.ErrInvalidParent
		}
		if parent.PostID != c.PostID {
			return domain.ErrInvalidParent
		}
		notifyTarget = parent.UserID
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	if err := s.notifier.Notify(ctx, notifyTarget, c.UserID, domain.NotificationComment, &c.PostID); err != nil {
		logrus.Errorf("failed to notify comment %d on post %d: %v", c.ID, c.PostID, err)
	}
	s.events.Send(domain.NewEngagementEvent(domain.EventComment, c.UserID, c.PostID))

	author, err := s.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		logrus.Warnf("failed to load comment author %d: %v", c.UserID, err)
		return nil
	}
	c.User = &author
	return nil
}

func (s *service) Update(ctx context.Context, commentID int64, content string, actor domain.User) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	if err := s.commentRepo.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	comment.Content = content
	return comment, nil
}

// Delete removes the comment's whole subtree; the repository keeps the
// post's comment counter in step with the rows actually removed.
func (s *service) Delete(ctx context.Context, commentID int64, actor domain.User) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actor.ID && !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	removed, err := s.commentRepo.DeleteSubtree(ctx, comment)
	if err != nil {
		return err
	}
	logrus.Debugf("deleted comment %d with %d descendants", commentID, removed-1)
	return nil
}
