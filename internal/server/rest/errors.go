package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skillswap/internal/common"
)

// writeError maps a service error onto an HTTP status and writes the usual
// {"detail": ...} payload.
func (s *Server) writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, common.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden),
		errors.Is(err, common.ErrAccountBanned):
		status = fiber.StatusForbidden
	case errors.Is(err, common.ErrIllegalTransition):
		status = fiber.StatusConflict
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrEmailTaken),
		errors.Is(err, common.ErrSelfSwap),
		errors.Is(err, common.ErrDuplicateRating),
		errors.Is(err, common.ErrSwapNotCompleted),
		errors.Is(err, common.ErrNotSwapParticipant):
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		s.log.Error(c.Context(), "request failed",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(status).JSON(fiber.Map{"detail": "internal server error"})
	}

	return c.Status(status).JSON(fiber.Map{"detail": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": msg})
}
