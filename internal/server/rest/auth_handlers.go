package rest

import (
	"github.com/gofiber/fiber/v2"

	"skillswap/internal/server/services"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	token, err := s.users.Register(c.Context(), in)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	token, err := s.users.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) me(c *fiber.Ctx) error {
	user, err := s.users.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(user)
}
