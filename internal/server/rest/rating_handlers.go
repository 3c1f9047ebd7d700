package rest

import (
	"github.com/gofiber/fiber/v2"

	"skillswap/internal/server/services"
)

func (s *Server) createRating(c *fiber.Ctx) error {
	var in services.RatingCreateInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	rating, err := s.ratings.Create(c.Context(), currentUserID(c), in)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(rating)
}

func (s *Server) userRatings(c *fiber.Ctx) error {
	ratings, err := s.ratings.ListForUser(c.Context(), c.Params("id"))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(ratings)
}
