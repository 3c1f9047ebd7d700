package rest

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) adminListUsers(c *fiber.Ctx) error {
	users, err := s.users.ListAll(c.Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(users)
}

func (s *Server) banUser(c *fiber.Ctx) error {
	if err := s.users.SetBanned(c.Context(), c.Params("id"), true); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user banned"})
}

func (s *Server) unbanUser(c *fiber.Ctx) error {
	if err := s.users.SetBanned(c.Context(), c.Params("id"), false); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user unbanned"})
}

func (s *Server) adminListSwaps(c *fiber.Ctx) error {
	reqs, err := s.swaps.ListAll(c.Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(reqs)
}

func (s *Server) adminStats(c *fiber.Ctx) error {
	stats, err := s.users.GetStats(c.Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(stats)
}
