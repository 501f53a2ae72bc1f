package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGroups lists every group.
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroupPosts serves a group's listing: the group header plus its
// posts, newest first, ten per page. Unknown slugs are 404.
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	group, posts, err := s.feedService.ListByGroup(ctx, slug, pageParam(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"posts": posts,
	})
}
