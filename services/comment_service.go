package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// CommentStore is the persistence surface CommentService needs.
// *database.CommentRepo satisfies it in production.
type CommentStore interface {
	FindByPostID(postID uuid.UUID) ([]*models.Comment, error)
	CountByPostID(postID uuid.UUID) (int64, error)
	FindByID(id uuid.UUID) (*models.Comment, error)
	Add(comment *models.Comment) error
	Delete(id uuid.UUID) error
}

// CommentService orchestrates anonymous comments on blog posts
type CommentService struct {
	comments CommentStore
	posts    PostStore
	names    *NameGenerator
}

func NewCommentService(comments CommentStore, posts PostStore, names *NameGenerator) *CommentService {
	return &CommentService{comments: comments, posts: posts, names: names}
}

// ListByPost returns the comments on a post, newest first
func (s *CommentService) ListByPost(postID uuid.UUID) ([]*models.Comment, error) {
	return s.comments.FindByPostID(postID)
}

// CountByPost returns the number of comments on a post
func (s *CommentService) CountByPost(postID uuid.UUID) (int64, error) {
	return s.comments.CountByPostID(postID)
}

// Create adds a comment to an existing post with a server-generated display name
func (s *CommentService) Create(postID uuid.UUID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, errs.NewMissingRequiredFieldError("content")
	}

	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errs.NewNotFound("blog post")
	}

	comment := &models.Comment{
		ID:            uuid.New(),
		Content:       content,
		AnonymousName: s.names.Generate(),
		PostID:        postID,
	}
	if err := s.comments.Add(comment); err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}
	return comment, nil
}

// Delete removes a single comment
func (s *CommentService) Delete(id uuid.UUID) error {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return errs.NewNotFound("comment")
	}
	if err := s.comments.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "comment", err)
	}
	return nil
}
