package service

import (
	"context"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

const maxPostLength = 10000

// PostService handles post authoring. Reads go through FeedService.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo}
}

// PostInput is the author-supplied portion of a post.
type PostInput struct {
	Text      string `json:"text"`
	GroupSlug string `json:"group"`
	ImageURL  string `json:"image_url"`
}

func (s *PostService) validate(ctx context.Context, in PostInput) (text string, groupID *uint, err error) {
	text = strings.TrimSpace(in.Text)
	if text == "" {
		return "", nil, models.NewValidationError("post text must not be empty")
	}
	if len(text) > maxPostLength {
		return "", nil, models.NewValidationError("post text is too long")
	}
	if in.GroupSlug != "" {
		group, gerr := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if gerr != nil {
			return "", nil, gerr
		}
		groupID = &group.ID
	}
	return text, groupID, nil
}

// Create publishes a new post for authorID.
func (s *PostService) Create(ctx context.Context, authorID uint, in PostInput) (*models.Post, error) {
	text, groupID, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     text,
		AuthorID: authorID,
		GroupID:  groupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// Update edits an existing post. Only the author may edit; anyone else
// gets ErrNotAuthor so the handler can redirect to the detail view. The
// publication date never changes on edit.
func (s *PostService) Update(ctx context.Context, postID, userID uint, in PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return post, ErrNotAuthor
	}

	text, groupID, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = groupID
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// Delete removes a post and its comments. Author only.
func (s *PostService) Delete(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.postRepo.Delete(ctx, postID)
}
