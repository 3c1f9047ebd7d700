package rest

import (
	"github.com/gofiber/fiber/v2"

	"skillswap/internal/server/models"
)

func (s *Server) listUsers(c *fiber.Ctx) error {
	users, err := s.users.ListPublic(c.Context())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(users)
}

func (s *Server) searchUsers(c *fiber.Ctx) error {
	term, err := fiberParam(c, "skill")
	if err != nil {
		return badRequest(c, "invalid search term")
	}

	users, err := s.users.SearchBySkill(c.Context(), term)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(users)
}

func (s *Server) userProfile(c *fiber.Ctx) error {
	profile, err := s.users.GetProfile(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) updateProfile(c *fiber.Ctx) error {
	var upd models.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := s.users.UpdateProfile(c.Context(), currentUserID(c), upd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(user)
}

func (s *Server) uploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer f.Close()

	url, err := s.users.UploadPhoto(c.Context(), currentUserID(c),
		fh.Filename, fh.Header.Get(fiber.HeaderContentType), f)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "photo uploaded",
		"photo_url": url,
	})
}
