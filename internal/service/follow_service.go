package service

import (
	"context"
	"errors"

	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// FollowService manages subscription edges between users. Targets are
// addressed by username; the pair and no-self invariants are enforced by
// the schema, so concurrent duplicate attempts still collapse to one row.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow subscribes userID to the author named username.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	err = s.followRepo.Create(ctx, &models.Follow{UserID: userID, AuthorID: author.ID})
	switch {
	case err == nil:
		middleware.FollowWrites.WithLabelValues("follow", "ok").Inc()
		return nil
	case errors.Is(err, models.ErrSelfFollow):
		middleware.FollowWrites.WithLabelValues("follow", "self_rejected").Inc()
		return err
	case errors.Is(err, models.ErrAlreadyFollowing):
		middleware.FollowWrites.WithLabelValues("follow", "duplicate").Inc()
		return err
	default:
		middleware.FollowWrites.WithLabelValues("follow", "error").Inc()
		return err
	}
}

// Unfollow removes the subscription if present. Unfollowing an author
// the user never followed is a no-op, not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	removed, err := s.followRepo.Delete(ctx, userID, author.ID)
	if err != nil {
		middleware.FollowWrites.WithLabelValues("unfollow", "error").Inc()
		return err
	}
	if removed {
		middleware.FollowWrites.WithLabelValues("unfollow", "ok").Inc()
	} else {
		middleware.FollowWrites.WithLabelValues("unfollow", "noop").Inc()
	}
	return nil
}

// IsFollowing reports whether userID follows the author named username.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, userID, author.ID)
}
