package rest

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skillswap/internal/common"
	"skillswap/internal/server/auth"
)

// localUserID is the fiber.Ctx locals key holding the authenticated user ID.
const localUserID = "userID"

// authRequired validates the bearer token and stores the subject user ID
// in the request locals.
func (s *Server) authRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "authorization header required",
		})
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != common.BearerScheme {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "invalid authorization header format",
		})
	}

	userID, err := auth.GetUserIDFromToken(parts[1], []byte(s.cfg.SecretKey))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "invalid or expired token",
		})
	}

	c.Locals(localUserID, userID)
	return c.Next()
}

// adminRequired allows only users with the admin role past. It must run
// after authRequired.
func (s *Server) adminRequired(c *fiber.Ctx) error {
	user, err := s.users.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	if user.Role != common.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"detail": "admin access required",
		})
	}
	return c.Next()
}

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}
