package server

import (
	"errors"

	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile serves an author's profile: the author, their paginated
// posts, and live follower/following counts. When the request carries a
// valid bearer token the payload also reports whether the viewer follows
// this author.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	username := c.Params("username")

	profile, err := s.feedService.ListByAuthor(ctx, username, pageParam(c), viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// FollowAuthor subscribes the current user to the named author (protected).
// The storage constraints are the authority: following yourself is a 400
// and a duplicate follow is a 409, in both cases without writing a row.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Follow(ctx, userID, username); err != nil {
		if errors.Is(err, models.ErrSelfFollow) {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		if errors.Is(err, models.ErrAlreadyFollowing) {
			return models.RespondWithError(c, fiber.StatusConflict, err)
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"following": username,
	})
}

// UnfollowAuthor removes the subscription (protected). Unfollowing an
// author the user never followed succeeds as a no-op.
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(ctx, userID, username); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
