package server

import (
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ClearPageCache drops every cached rendered page (admin only). Rate
// limiter counters and other non-page keys are untouched.
func (s *Server) ClearPageCache(c *fiber.Ctx) error {
	if err := s.pageCache.Clear(c.UserContext()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}
