package rest

import (
	"github.com/gofiber/fiber/v2"

	"skillswap/internal/server/models"
	"skillswap/internal/server/services"
)

type swapStatusRequest struct {
	Status models.SwapStatus `json:"status"`
}

func (s *Server) createSwap(c *fiber.Ctx) error {
	var in services.SwapCreateInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := s.swaps.Create(c.Context(), currentUserID(c), in)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(req)
}

func (s *Server) myRequests(c *fiber.Ctx) error {
	reqs, err := s.swaps.ListOutgoing(c.Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(reqs)
}

func (s *Server) incomingRequests(c *fiber.Ctx) error {
	reqs, err := s.swaps.ListIncoming(c.Context(), currentUserID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(reqs)
}

func (s *Server) updateSwapStatus(c *fiber.Ctx) error {
	var in swapStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	req, err := s.swaps.UpdateStatus(c.Context(), currentUserID(c), c.Params("id"), in.Status)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(req)
}

func (s *Server) deleteSwap(c *fiber.Ctx) error {
	if err := s.swaps.Delete(c.Context(), currentUserID(c), c.Params("id")); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "swap request deleted"})
}
