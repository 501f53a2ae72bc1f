package server

import (
	"errors"

	"yatube/internal/models"
	"yatube/internal/pagination"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// pageParam reads the ?page query parameter. Malformed or missing values
// fall back to the first page; out-of-range values are clamped later
// against the live row count, so this never fails.
func pageParam(c *fiber.Ctx) int {
	return pagination.ParsePage(c.Query("page"))
}

// viewerID returns the authenticated user's ID, or zero for anonymous
// requests (routes behind OptionalAuth).
func viewerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotAuthor) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError(err.Error()))
	}

	status := fiber.StatusInternalServerError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation, models.CodeSelfFollow:
			status = fiber.StatusBadRequest
		case models.CodeNotFound:
			status = fiber.StatusNotFound
		case models.CodeUnauthorized:
			status = fiber.StatusUnauthorized
		case models.CodeConflict, models.CodeAlreadyFollowed:
			status = fiber.StatusConflict
		}
	}
	return models.RespondWithError(c, status, err)
}
