package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"yatube/internal/cache"
	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts serves the index listing: every post, newest first, ten per
// page. The anonymous first page is the highest-traffic view, so it is
// served through the Redis page cache; within the TTL window readers may
// see content up to that many seconds stale.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := pageParam(c)

	render := func() (string, error) {
		listing, err := s.feedService.ListAll(ctx, page)
		if err != nil {
			return "", err
		}
		body, err := json.Marshal(listing)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	if viewerID(c) == 0 && page == 1 {
		body, err := s.pageCache.CachedRender(ctx, cache.IndexKey(page), render)
		if err != nil {
			return respondServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(body)
	}

	listing, err := s.feedService.ListAll(ctx, page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(listing)
}

// GetPost serves a post detail together with its comments in creation order.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.feedService.GetPost(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	comments, err := s.commentService.ListByPost(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// GetFeed serves the personalized feed: posts by authors the current
// user follows. Following nobody yields a valid empty page.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.ListFeed(ctx, userID, pageParam(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// CreatePost publishes a new post for the authenticated user (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req service.PostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(ctx, userID, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost edits a post (protected). A non-author is not failed hard;
// the response redirects to the post's read view, matching the
// edit-page-bounces-strangers behavior of the web flow.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.PostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(ctx, postID, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthor) {
			c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/posts/%d", postID))
			return c.Status(fiber.StatusSeeOther).JSON(post)
		}
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost removes a post and its comments (protected, author only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(ctx, postID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
