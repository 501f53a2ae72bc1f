package service

import (
	"context"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

const maxCommentLength = 2000

// CommentService attaches comments to posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Add creates a comment by authorID under postID. The post must exist.
func (s *CommentService) Add(ctx context.Context, postID, authorID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("comment text must not be empty")
	}
	if len(text) > maxCommentLength {
		return nil, models.NewValidationError("comment text is too long")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListByPost returns every comment under postID, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// Delete removes a comment. The comment's author or the post's author
// may delete it.
func (s *CommentService) Delete(ctx context.Context, commentID, userID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		post, perr := s.postRepo.GetByID(ctx, comment.PostID)
		if perr != nil {
			return perr
		}
		if post.AuthorID != userID {
			return ErrNotAuthor
		}
	}
	return s.commentRepo.Delete(ctx, commentID)
}
