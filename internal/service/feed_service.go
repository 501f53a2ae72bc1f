// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/repository"
)

// Profile is the payload behind an author's profile page: the author, a
// page of their posts, and counts derived by counting rows at read time.
type Profile struct {
	Author         *models.User                  `json:"author"`
	Posts          pagination.Page[*models.Post] `json:"posts"`
	PostCount      int64                         `json:"post_count"`
	FollowerCount  int64                         `json:"follower_count"`
	FollowingCount int64                         `json:"following_count"`
	// Following reports whether the requesting viewer follows this author.
	// Always false for anonymous viewers.
	Following bool `json:"following"`
}

// FeedService composes filtered, deterministically ordered, paginated
// post listings. Page numbers are clamped against the live row count, so
// an out-of-range request serves the last page rather than erroring.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	perPage    int
}

// NewFeedService returns a FeedService using the default page size.
func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		perPage:    pagination.DefaultPerPage,
	}
}

func (s *FeedService) window(page int, total int64) (clamped, limit, offset int) {
	clamped = pagination.Clamp(page, total, s.perPage)
	return clamped, s.perPage, pagination.Offset(clamped, s.perPage)
}

// ListAll returns the requested page of every post, newest first.
func (s *FeedService) ListAll(ctx context.Context, page int) (pagination.Page[*models.Post], error) {
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return pagination.Page[*models.Post]{}, err
	}
	page, limit, offset := s.window(page, total)
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return pagination.Page[*models.Post]{}, err
	}
	return pagination.New(posts, total, page, s.perPage), nil
}

// ListByGroup returns the requested page of a group's posts. An unknown
// slug is NotFound.
func (s *FeedService) ListByGroup(ctx context.Context, slug string, page int) (*models.Group, pagination.Page[*models.Post], error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, pagination.Page[*models.Post]{}, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, pagination.Page[*models.Post]{}, err
	}
	page, limit, offset := s.window(page, total)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, limit, offset)
	if err != nil {
		return nil, pagination.Page[*models.Post]{}, err
	}
	return group, pagination.New(posts, total, page, s.perPage), nil
}

// ListByAuthor assembles the profile payload for username. viewerID is
// zero for anonymous requests.
func (s *FeedService) ListByAuthor(ctx context.Context, username string, page int, viewerID uint) (*Profile, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	page, limit, offset := s.window(page, total)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	viewerFollows := false
	if viewerID != 0 && viewerID != author.ID {
		viewerFollows, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		Author:         author,
		Posts:          pagination.New(posts, total, page, s.perPage),
		PostCount:      total,
		FollowerCount:  followers,
		FollowingCount: following,
		Following:      viewerFollows,
	}, nil
}

// GetPost returns a single post with its comments in creation order.
func (s *FeedService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListFeed returns the requested page of posts by authors the viewer
// follows. Following nobody yields an empty page, not an error.
func (s *FeedService) ListFeed(ctx context.Context, viewerID uint, page int) (pagination.Page[*models.Post], error) {
	total, err := s.postRepo.CountFeed(ctx, viewerID)
	if err != nil {
		return pagination.Page[*models.Post]{}, err
	}
	page, limit, offset := s.window(page, total)
	posts, err := s.postRepo.ListFeed(ctx, viewerID, limit, offset)
	if err != nil {
		return pagination.Page[*models.Post]{}, err
	}
	return pagination.New(posts, total, page, s.perPage), nil
}
